package credstate

import "github.com/dmitrymomot/authstate/pkg/authsession"

// NotConfigured is the initial state before the store machine is used.
type NotConfigured struct{}

func (NotConfigured) Name() string { return "CredentialStore.NotConfigured" }

// LoadingStoredCredentials waits for the persisted credential read.
type LoadingStoredCredentials struct{}

func (LoadingStoredCredentials) Name() string { return "CredentialStore.LoadingStoredCredentials" }

// StoringCredentials waits for the persisted credential write.
type StoringCredentials struct {
	Credential authsession.PersistedCredential
}

func (StoringCredentials) Name() string { return "CredentialStore.StoringCredentials" }

// ClearingCredentials waits for the persisted credential removal.
type ClearingCredentials struct{}

func (ClearingCredentials) Name() string { return "CredentialStore.ClearingCredentials" }

// Success holds the outcome of a completed operation. An absent persisted
// record loads as the zero credential; Empty distinguishes it from a real one.
type Success struct {
	Credential authsession.PersistedCredential
	Empty      bool
}

func (Success) Name() string { return "CredentialStore.Success" }

// Error holds a genuine storage failure. "Not found" never lands here.
type Error struct {
	Err error
}

func (Error) Name() string { return "CredentialStore.Error" }

// Idle is the resting state between operations.
type Idle struct{}

func (Idle) Name() string { return "CredentialStore.Idle" }
