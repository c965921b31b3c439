package credstate

import (
	"context"
	"errors"

	"github.com/dmitrymomot/authstate/pkg/authsession"
	"github.com/dmitrymomot/authstate/pkg/credentialstore"
	"github.com/dmitrymomot/authstate/pkg/machine"
)

// ErrMissingStore indicates an action ran against an engine environment that
// does not provide a credential store.
var ErrMissingStore = errors.New("credstate: environment does not provide a credential store")

// Environment carries the persisted store the actions operate on.
type Environment struct {
	Store *credentialstore.Store
}

// CredentialStoreEnvironment returns the environment itself, satisfying
// EnvironmentProvider.
func (e Environment) CredentialStoreEnvironment() Environment { return e }

// EnvironmentProvider is implemented by engine environments that can supply
// the credential store.
type EnvironmentProvider interface {
	CredentialStoreEnvironment() Environment
}

func storeEnv(env machine.Environment) (*credentialstore.Store, bool) {
	provider, ok := env.(EnvironmentProvider)
	if !ok {
		return nil, false
	}
	store := provider.CredentialStoreEnvironment().Store
	return store, store != nil
}

// LoadAction reads the persisted credential. An absent record is not a
// failure: it completes with an empty credential.
type LoadAction struct{}

func (LoadAction) ID() string { return "CredentialStore.LoadAction" }

func (LoadAction) Execute(ctx context.Context, dispatcher machine.Dispatcher, env machine.Environment) {
	store, ok := storeEnv(env)
	if !ok {
		dispatcher.Send(ThrowError{Err: ErrMissingStore})
		return
	}

	var credential authsession.PersistedCredential
	err := store.RetrieveCredential(ctx, "", &credential)
	switch {
	case err == nil:
		dispatcher.Send(CompletedOperation{Credential: credential})
	case errors.Is(err, credentialstore.ErrCredentialNotFound):
		dispatcher.Send(CompletedOperation{Empty: true})
	default:
		dispatcher.Send(ThrowError{Err: err})
	}
}

// StoreAction writes the credential to the persisted store.
type StoreAction struct {
	Credential authsession.PersistedCredential
}

func (StoreAction) ID() string { return "CredentialStore.StoreAction" }

func (a StoreAction) Execute(ctx context.Context, dispatcher machine.Dispatcher, env machine.Environment) {
	store, ok := storeEnv(env)
	if !ok {
		dispatcher.Send(ThrowError{Err: ErrMissingStore})
		return
	}

	if err := store.SaveCredential(ctx, "", a.Credential); err != nil {
		dispatcher.Send(ThrowError{Err: err})
		return
	}
	dispatcher.Send(CompletedOperation{Credential: a.Credential})
}

// ClearAction removes the persisted credential. Clearing an absent record
// succeeds.
type ClearAction struct{}

func (ClearAction) ID() string { return "CredentialStore.ClearAction" }

func (ClearAction) Execute(ctx context.Context, dispatcher machine.Dispatcher, env machine.Environment) {
	store, ok := storeEnv(env)
	if !ok {
		dispatcher.Send(ThrowError{Err: ErrMissingStore})
		return
	}

	if err := store.DeleteCredential(ctx, ""); err != nil {
		dispatcher.Send(ThrowError{Err: err})
		return
	}
	dispatcher.Send(CompletedOperation{Empty: true})
}
