package authsession_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authstate/pkg/authsession"
	"github.com/dmitrymomot/authstate/pkg/credentialstore"
	"github.com/dmitrymomot/authstate/pkg/machine"
	"github.com/dmitrymomot/authstate/pkg/signout"
)

type lifecycleFixture struct {
	engine   *machine.Engine
	store    *authsession.SessionStore
	creds    *credentialstore.Store
	storage  *credentialstore.MemoryStorage
	provider *fakeAuthProvider
}

func newLifecycleFixture(t *testing.T, provider *fakeAuthProvider) *lifecycleFixture {
	t.Helper()

	storage := credentialstore.NewMemoryStorage()
	creds, err := credentialstore.New(storage, credentialstore.KeyConfig{UserPoolID: "pool", AppClientID: "client"})
	require.NoError(t, err)

	store, err := authsession.NewSessionStore(creds)
	require.NoError(t, err)

	engine := machine.MustNew(authsession.NewResolver(), store, authsession.Environment{
		Provider:    provider,
		Credentials: creds,
	})
	t.Cleanup(func() { _ = engine.Close() })

	return &lifecycleFixture{
		engine:   engine,
		store:    store,
		creds:    creds,
		storage:  storage,
		provider: provider,
	}
}

func awaitState[S machine.State](t *testing.T, engine *machine.Engine) S {
	t.Helper()

	var state S
	require.Eventually(t, func() bool {
		current, ok := engine.ActiveState().(S)
		if ok {
			state = current
		}
		return ok
	}, time.Second, time.Millisecond)
	return state
}

func TestLifecycle_SignInToSignOut(t *testing.T) {
	t.Parallel()

	data := establishedData()
	f := newLifecycleFixture(t, &fakeAuthProvider{signInData: data})

	f.engine.Send(authsession.Configure{})
	awaitState[authsession.Configured](t, f.engine)

	f.engine.Send(authsession.InitiateSignIn{Username: "alice", Password: "pw"})

	state := awaitState[authsession.SignedIn](t, f.engine)
	assert.Equal(t, data, state.Data)
	assert.Equal(t, 0, f.store.StackLen(), "establishing the session empties the stack")
	assert.Len(t, f.storage.Snapshot(), 1, "exactly one record is persisted")

	f.engine.Send(authsession.InitiateSignOut{})

	out := awaitState[authsession.SignedOut](t, f.engine)
	assert.Equal(t, "alice", out.Data.Username)
	assert.NoError(t, out.Data.GlobalSignOutError)
	assert.Empty(t, f.storage.Snapshot(), "sign-out removes the persisted record")
}

func TestLifecycle_FailedSignInAllowsRetry(t *testing.T) {
	t.Parallel()

	provider := &fakeAuthProvider{signInErr: assert.AnError}
	f := newLifecycleFixture(t, provider)

	f.engine.Send(authsession.Configure{})
	f.engine.Send(authsession.InitiateSignIn{Username: "alice", Password: "wrong"})

	errState := awaitState[authsession.Error](t, f.engine)
	assert.True(t, errState.Err.Recoverable)
	assert.Empty(t, f.storage.Snapshot())

	f.provider.signInErr = nil
	f.provider.signInData = establishedData()
	f.engine.Send(authsession.InitiateSignIn{Username: "alice", Password: "pw"})

	awaitState[authsession.SignedIn](t, f.engine)
}

func TestLifecycle_RestartResumesSession(t *testing.T) {
	t.Parallel()

	data := establishedData()
	f := newLifecycleFixture(t, &fakeAuthProvider{signInData: data})

	f.engine.Send(authsession.Configure{})
	f.engine.Send(authsession.InitiateSignIn{Username: "alice", Password: "pw"})
	awaitState[authsession.SignedIn](t, f.engine)
	require.NoError(t, f.engine.Close())

	// A fresh store and engine over the same credential storage stand in for
	// a process restart.
	store, err := authsession.NewSessionStore(f.creds)
	require.NoError(t, err)
	restarted := machine.MustNew(authsession.NewResolver(), store, authsession.Environment{
		Provider:    f.provider,
		Credentials: f.creds,
	})
	t.Cleanup(func() { _ = restarted.Close() })

	state, ok := restarted.ActiveState().(authsession.SignedIn)
	require.True(t, ok, "the promoted session must be resumable without a new sign-in")
	assert.Equal(t, data, state.Data)
}

func TestLifecycle_GlobalSignOutDegradesGracefully(t *testing.T) {
	t.Parallel()

	data := establishedData()
	f := newLifecycleFixture(t, &fakeAuthProvider{
		signInData: data,
		globalErr:  assert.AnError,
	})

	f.engine.Send(authsession.Configure{})
	f.engine.Send(authsession.InitiateSignIn{Username: "alice", Password: "pw"})
	awaitState[authsession.SignedIn](t, f.engine)

	f.engine.Send(authsession.InitiateSignOut{Options: authsession.SignOutOptions{Global: true}})

	out := awaitState[authsession.SignedOut](t, f.engine)
	assert.ErrorIs(t, out.Data.GlobalSignOutError, assert.AnError)
	assert.Empty(t, f.storage.Snapshot(), "local state is cleared even when the remote call fails")
}

func TestLifecycle_SessionRefresh(t *testing.T) {
	t.Parallel()

	data := establishedData()
	fresh := authsession.Tokens{AccessToken: "at2", IDToken: "idt2", RefreshToken: "rt2"}
	f := newLifecycleFixture(t, &fakeAuthProvider{signInData: data, refreshed: fresh})

	f.engine.Send(authsession.Configure{})
	f.engine.Send(authsession.InitiateSignIn{Username: "alice", Password: "pw"})
	awaitState[authsession.SignedIn](t, f.engine)

	f.engine.Send(authsession.RefreshSession{})

	require.Eventually(t, func() bool {
		state, ok := f.engine.ActiveState().(authsession.SignedIn)
		return ok && state.Data.Tokens.AccessToken == "at2"
	}, time.Second, time.Millisecond)

	// The renewed session was re-promoted over the old record.
	assert.Len(t, f.storage.Snapshot(), 1)
}

func TestLifecycle_ListenerObservesTransitions(t *testing.T) {
	t.Parallel()

	f := newLifecycleFixture(t, &fakeAuthProvider{signInData: establishedData()})

	seen := make(chan string, 16)
	f.engine.Subscribe(machine.NewListenerToken(), func(state machine.State) bool {
		seen <- state.Name()
		return true
	}, nil)

	f.engine.Send(authsession.InitiateSignIn{Username: "alice", Password: "pw"})
	awaitState[authsession.SignedIn](t, f.engine)

	var names []string
	for len(names) < 3 {
		select {
		case name := <-seen:
			names = append(names, name)
		case <-time.After(time.Second):
			t.Fatalf("timed out after %v", names)
		}
	}

	assert.Equal(t, []string{
		authsession.Configured{}.Name(),
		authsession.SigningIn{}.Name(),
		authsession.SignedIn{}.Name(),
	}, names)
}

// Embedding the sub-machine keeps its transitions observable from the top
// level while a sign-out is in flight.
func TestLifecycle_SigningOutExposesSubState(t *testing.T) {
	t.Parallel()

	resolver := authsession.NewResolver()
	data := establishedData()

	resolution := resolver.Resolve(authsession.SignedIn{Data: data}, authsession.InitiateSignOut{
		Options: authsession.SignOutOptions{HostedUI: true, Global: true, BypassCancel: true},
	})

	state, ok := resolution.NewState.(authsession.SigningOut)
	require.True(t, ok)
	assert.Equal(t, signout.NotStarted{}, state.Sub)
}
