package credstate

import "github.com/dmitrymomot/authstate/pkg/authsession"

// LoadCredentialStore requests a read of the persisted credential.
type LoadCredentialStore struct{}

func (LoadCredentialStore) Name() string { return "CredentialStore.LoadCredentialStore" }

// StoreCredentials requests a write of the credential.
type StoreCredentials struct {
	Credential authsession.PersistedCredential
}

func (StoreCredentials) Name() string { return "CredentialStore.StoreCredentials" }

// ClearCredentials requests removal of the persisted credential.
type ClearCredentials struct{}

func (ClearCredentials) Name() string { return "CredentialStore.ClearCredentials" }

// CompletedOperation reports a finished store operation.
type CompletedOperation struct {
	Credential authsession.PersistedCredential
	Empty      bool
}

func (CompletedOperation) Name() string { return "CredentialStore.CompletedOperation" }

// ThrowError reports a genuine storage failure.
type ThrowError struct {
	Err error
}

func (ThrowError) Name() string { return "CredentialStore.ThrowError" }

// MoveToIdle returns the machine to the resting state after an outcome has
// been observed.
type MoveToIdle struct{}

func (MoveToIdle) Name() string { return "CredentialStore.MoveToIdle" }
