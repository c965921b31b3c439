package authsession

import "errors"

var (
	// ErrNilCredentialStore indicates a session store was constructed without
	// a persisted credential store.
	ErrNilCredentialStore = errors.New("authsession: credential store cannot be nil")

	// ErrMissingProvider indicates an action ran without an identity provider
	// client in the environment.
	ErrMissingProvider = errors.New("authsession: identity provider client is not configured")

	// ErrPersistFailed wraps credential-store failures during a state commit.
	ErrPersistFailed = errors.New("authsession: persisting session state failed")

	// ErrNoTokenExpiry indicates the access token carries no exp claim.
	ErrNoTokenExpiry = errors.New("authsession: access token has no expiry claim")

	// ErrConfigLoad wraps configuration loading failures.
	ErrConfigLoad = errors.New("authsession: loading configuration failed")
)
