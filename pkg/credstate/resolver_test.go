package credstate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authstate/pkg/authsession"
	"github.com/dmitrymomot/authstate/pkg/credentialstore"
	"github.com/dmitrymomot/authstate/pkg/credstate"
	"github.com/dmitrymomot/authstate/pkg/machine"
)

func testCredential() authsession.PersistedCredential {
	return authsession.PersistedCredential{
		SignedInData: authsession.SignedInData{
			Username: "alice",
			UserID:   "user-1",
			Tokens:   authsession.Tokens{AccessToken: "at", RefreshToken: "rt"},
		},
	}
}

func TestResolver_Operations(t *testing.T) {
	t.Parallel()

	resolver := credstate.NewResolver()

	t.Run("load from the initial state", func(t *testing.T) {
		t.Parallel()
		resolution := resolver.Resolve(credstate.NotConfigured{}, credstate.LoadCredentialStore{})

		assert.Equal(t, credstate.LoadingStoredCredentials{}, resolution.NewState)
		require.Len(t, resolution.Actions, 1)
		assert.IsType(t, credstate.LoadAction{}, resolution.Actions[0])
	})

	t.Run("store from idle", func(t *testing.T) {
		t.Parallel()
		credential := testCredential()
		resolution := resolver.Resolve(credstate.Idle{}, credstate.StoreCredentials{Credential: credential})

		state, ok := resolution.NewState.(credstate.StoringCredentials)
		require.True(t, ok)
		assert.Equal(t, credential, state.Credential)
	})

	t.Run("clear from idle", func(t *testing.T) {
		t.Parallel()
		resolution := resolver.Resolve(credstate.Idle{}, credstate.ClearCredentials{})

		assert.Equal(t, credstate.ClearingCredentials{}, resolution.NewState)
		require.Len(t, resolution.Actions, 1)
		assert.IsType(t, credstate.ClearAction{}, resolution.Actions[0])
	})

	t.Run("an in-flight operation rejects new requests", func(t *testing.T) {
		t.Parallel()
		current := credstate.LoadingStoredCredentials{}
		resolution := resolver.Resolve(current, credstate.StoreCredentials{Credential: testCredential()})

		assert.Equal(t, current, resolution.NewState)
		assert.Empty(t, resolution.Actions)
	})

	t.Run("completion lands in success", func(t *testing.T) {
		t.Parallel()
		credential := testCredential()
		resolution := resolver.Resolve(credstate.StoringCredentials{Credential: credential}, credstate.CompletedOperation{Credential: credential})

		state, ok := resolution.NewState.(credstate.Success)
		require.True(t, ok)
		assert.Equal(t, credential, state.Credential)
		assert.False(t, state.Empty)
	})

	t.Run("failure lands in error", func(t *testing.T) {
		t.Parallel()
		resolution := resolver.Resolve(credstate.ClearingCredentials{}, credstate.ThrowError{Err: assert.AnError})

		state, ok := resolution.NewState.(credstate.Error)
		require.True(t, ok)
		assert.ErrorIs(t, state.Err, assert.AnError)
	})

	t.Run("outcome states return to idle on request", func(t *testing.T) {
		t.Parallel()
		fromSuccess := resolver.Resolve(credstate.Success{}, credstate.MoveToIdle{})
		assert.Equal(t, credstate.Idle{}, fromSuccess.NewState)

		fromError := resolver.Resolve(credstate.Error{Err: assert.AnError}, credstate.MoveToIdle{})
		assert.Equal(t, credstate.Idle{}, fromError.NewState)
	})

	t.Run("outcome states ignore everything else", func(t *testing.T) {
		t.Parallel()
		current := credstate.Success{Credential: testCredential()}
		resolution := resolver.Resolve(current, credstate.LoadCredentialStore{})
		assert.Equal(t, current, resolution.NewState)
		assert.Empty(t, resolution.Actions)
	})
}

func newStoreMachine(t *testing.T) (*machine.Engine, *credentialstore.Store) {
	t.Helper()

	creds, err := credentialstore.New(credentialstore.NewMemoryStorage(), credentialstore.KeyConfig{
		UserPoolID:  "pool",
		AppClientID: "client",
	})
	require.NoError(t, err)

	resolver := credstate.NewResolver()
	engine := machine.MustNew(resolver, machine.NewMemoryStore(resolver.InitialState()), credstate.Environment{Store: creds})
	t.Cleanup(func() { _ = engine.Close() })
	return engine, creds
}

func awaitSuccess(t *testing.T, engine *machine.Engine) credstate.Success {
	t.Helper()

	var state credstate.Success
	require.Eventually(t, func() bool {
		current, ok := engine.ActiveState().(credstate.Success)
		if ok {
			state = current
		}
		return ok
	}, time.Second, time.Millisecond)
	return state
}

func TestStoreMachine_LoadEmpty(t *testing.T) {
	t.Parallel()

	engine, _ := newStoreMachine(t)

	engine.Send(credstate.LoadCredentialStore{})

	state := awaitSuccess(t, engine)
	assert.True(t, state.Empty, "an absent record loads as empty, not as a failure")
}

func TestStoreMachine_StoreThenLoad(t *testing.T) {
	t.Parallel()

	engine, _ := newStoreMachine(t)
	credential := testCredential()

	engine.Send(credstate.StoreCredentials{Credential: credential})
	stored := awaitSuccess(t, engine)
	assert.Equal(t, credential, stored.Credential)

	engine.Send(credstate.MoveToIdle{})
	engine.Send(credstate.LoadCredentialStore{})

	require.Eventually(t, func() bool {
		state, ok := engine.ActiveState().(credstate.Success)
		return ok && !state.Empty && state.Credential == credential
	}, time.Second, time.Millisecond)
}

func TestStoreMachine_Clear(t *testing.T) {
	t.Parallel()

	engine, creds := newStoreMachine(t)

	engine.Send(credstate.StoreCredentials{Credential: testCredential()})
	awaitSuccess(t, engine)

	engine.Send(credstate.MoveToIdle{})
	engine.Send(credstate.ClearCredentials{})

	require.Eventually(t, func() bool {
		state, ok := engine.ActiveState().(credstate.Success)
		return ok && state.Empty
	}, time.Second, time.Millisecond)

	var out authsession.PersistedCredential
	err := creds.RetrieveCredential(context.Background(), "", &out)
	assert.ErrorIs(t, err, credentialstore.ErrCredentialNotFound)
}

func TestStoreMachine_MissingStore(t *testing.T) {
	t.Parallel()

	resolver := credstate.NewResolver()
	engine := machine.MustNew(resolver, machine.NewMemoryStore(resolver.InitialState()), credstate.Environment{})
	t.Cleanup(func() { _ = engine.Close() })

	engine.Send(credstate.LoadCredentialStore{})

	require.Eventually(t, func() bool {
		state, ok := engine.ActiveState().(credstate.Error)
		return ok && errors.Is(state.Err, credstate.ErrMissingStore)
	}, time.Second, time.Millisecond)
}
