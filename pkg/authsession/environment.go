package authsession

import (
	"context"

	"github.com/dmitrymomot/authstate/pkg/credentialstore"
	"github.com/dmitrymomot/authstate/pkg/signout"
)

// IdentityProviderClient is the remote identity-provider surface the auth
// session depends on. It extends the sign-out client with the calls that
// establish and renew sessions.
type IdentityProviderClient interface {
	signout.IdentityProviderClient

	// SignIn performs the username/password exchange and returns the
	// signed-in snapshot with its tokens.
	SignIn(ctx context.Context, username, password string) (SignedInData, error)

	// RefreshTokens exchanges a refresh token for a renewed token set.
	RefreshTokens(ctx context.Context, refreshToken string) (Tokens, error)
}

// Environment bundles the collaborators actions execute against. It is
// injected at engine construction, not built by the engine.
type Environment struct {
	Config      Config
	Provider    IdentityProviderClient
	Credentials *credentialstore.Store
	HostedFlow  signout.HostedFlow
	Notifier    signout.CancellationNotifier
}

// SignOutEnvironment projects the environment for the sign-out sub-machine's
// actions, satisfying signout.EnvironmentProvider.
func (e Environment) SignOutEnvironment() signout.Environment {
	env := signout.Environment{
		Provider:   e.Provider,
		HostedFlow: e.HostedFlow,
		HostedUI:   e.Config.HostedUIConfig(),
		Notifier:   e.Notifier,
	}
	// A typed nil pointer must not become a non-nil interface value.
	if e.Credentials != nil {
		env.Credentials = e.Credentials
	}
	return env
}
