package signout

import (
	"context"
	"net/url"

	"golang.org/x/oauth2"
)

// IdentityProviderClient is the remote identity-provider surface the sign-out
// flow depends on. Timeouts are the client's responsibility.
type IdentityProviderClient interface {
	// GlobalSignOut invalidates every session of the user across devices.
	GlobalSignOut(ctx context.Context, accessToken string) error

	// RevokeToken revokes the refresh token and the access tokens minted from it.
	RevokeToken(ctx context.Context, refreshToken string) error
}

// CredentialStore is the slice of the persisted credential store the sign-out
// flow needs: removal of the session credential and the user's device record.
type CredentialStore interface {
	DeleteCredential(ctx context.Context, userID string) error
	DeleteDeviceMetadata(ctx context.Context, username string) error
}

// HostedFlow launches the hosted sign-out UI and blocks until it completes.
// Implementations return ErrUserCancelled when the user dismisses the UI.
type HostedFlow interface {
	SignOut(ctx context.Context, logoutURL string) error
}

// CancellationNotifier receives the fire-and-forget notification emitted when
// a hosted sign-out is cancelled by the user.
type CancellationNotifier interface {
	SignOutCancelled()
}

// HostedUIConfig describes the hosted sign-out endpoint. The OAuth client
// configuration supplies the client id; LogoutURL is the provider's hosted
// logout endpoint and RedirectURL is where the browser lands afterwards.
type HostedUIConfig struct {
	OAuth       oauth2.Config
	LogoutURL   string
	RedirectURL string
}

// SignOutURL builds the full hosted sign-out URL for this configuration.
func (c HostedUIConfig) SignOutURL() (string, error) {
	u, err := url.Parse(c.LogoutURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("client_id", c.OAuth.ClientID)
	if c.RedirectURL != "" {
		q.Set("logout_uri", c.RedirectURL)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Environment bundles the collaborators sign-out actions execute against.
// Notifier may be nil when the embedding application has no cancellation UI.
type Environment struct {
	Provider    IdentityProviderClient
	Credentials CredentialStore
	HostedFlow  HostedFlow
	HostedUI    HostedUIConfig
	Notifier    CancellationNotifier
}

// SignOutEnvironment returns the environment itself, satisfying
// EnvironmentProvider so a bare Environment can be handed straight to an
// engine in tests.
func (e Environment) SignOutEnvironment() Environment { return e }

// EnvironmentProvider is implemented by engine environments that can supply
// the sign-out collaborators. Actions resolve their environment through it.
type EnvironmentProvider interface {
	SignOutEnvironment() Environment
}
