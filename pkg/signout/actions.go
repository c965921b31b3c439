package signout

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/authstate/pkg/machine"
)

// signOutEnv extracts the sign-out collaborators from the engine environment.
func signOutEnv(env machine.Environment) (Environment, bool) {
	provider, ok := env.(EnvironmentProvider)
	if !ok {
		return Environment{}, false
	}
	return provider.SignOutEnvironment(), true
}

// HostedSignOutAction launches the hosted sign-out UI and dispatches the next
// phase of the flow when it completes. A user cancellation becomes a
// UserCancelled event unless BypassCancel is set; any other failure, including
// a missing hosted flow in the environment, degrades to the next phase so
// local sign-out still happens.
type HostedSignOutAction struct {
	Session       SignedInSession
	GlobalSignOut bool
	BypassCancel  bool
}

func (HostedSignOutAction) ID() string { return "SignOut.HostedSignOutAction" }

func (a HostedSignOutAction) Execute(ctx context.Context, dispatcher machine.Dispatcher, env machine.Environment) {
	var err error
	if e, ok := signOutEnv(env); ok && e.HostedFlow != nil {
		var logoutURL string
		logoutURL, err = e.HostedUI.SignOutURL()
		if err == nil {
			err = e.HostedFlow.SignOut(ctx, logoutURL)
		}
	} else {
		err = ErrMissingEnvironment
	}

	if errors.Is(err, ErrUserCancelled) && !a.BypassCancel {
		dispatcher.Send(UserCancelled{})
		return
	}

	// Failures other than cancellation degrade to forward progress: the local
	// state must be cleared eventually.
	if a.GlobalSignOut {
		dispatcher.Send(SignOutGlobally{Session: a.Session})
		return
	}
	dispatcher.Send(RevokeToken{Session: a.Session})
}

// GlobalSignOutAction calls the provider's global sign-out.
type GlobalSignOutAction struct {
	Session SignedInSession
}

func (GlobalSignOutAction) ID() string { return "SignOut.GlobalSignOutAction" }

func (a GlobalSignOutAction) Execute(ctx context.Context, dispatcher machine.Dispatcher, env machine.Environment) {
	e, ok := signOutEnv(env)
	if !ok || e.Provider == nil {
		dispatcher.Send(GlobalSignOutFailed{Session: a.Session, Err: ErrMissingEnvironment})
		return
	}

	if err := e.Provider.GlobalSignOut(ctx, a.Session.AccessToken); err != nil {
		dispatcher.Send(GlobalSignOutFailed{Session: a.Session, Err: err})
		return
	}
	dispatcher.Send(RevokeToken{Session: a.Session})
}

// RevokeTokenAction revokes the refresh token. Failures are recorded but
// never stop the flow; the next phase is always the local sign-out.
type RevokeTokenAction struct {
	Session            SignedInSession
	GlobalSignOutError error
}

func (RevokeTokenAction) ID() string { return "SignOut.RevokeTokenAction" }

func (a RevokeTokenAction) Execute(ctx context.Context, dispatcher machine.Dispatcher, env machine.Environment) {
	var revokeErr error

	e, ok := signOutEnv(env)
	if !ok || e.Provider == nil {
		revokeErr = ErrMissingEnvironment
	} else {
		revokeErr = e.Provider.RevokeToken(ctx, a.Session.RefreshToken)
	}

	dispatcher.Send(SignOutLocally{
		Session:            a.Session,
		GlobalSignOutError: a.GlobalSignOutError,
		RevokeTokenError:   revokeErr,
	})
}

// BuildRevokeErrorAction folds a global sign-out failure into the composite
// error carried to the terminal state, then continues with the local sign-out.
type BuildRevokeErrorAction struct {
	Session            SignedInSession
	GlobalSignOutError error
}

func (BuildRevokeErrorAction) ID() string { return "SignOut.BuildRevokeErrorAction" }

func (a BuildRevokeErrorAction) Execute(ctx context.Context, dispatcher machine.Dispatcher, env machine.Environment) {
	composite := fmt.Errorf("global sign-out failed, token not revoked: %w", a.GlobalSignOutError)
	dispatcher.Send(SignOutLocally{
		Session:            a.Session,
		GlobalSignOutError: a.GlobalSignOutError,
		RevokeTokenError:   composite,
	})
}

// LocalSignOutAction clears the persisted credential and device records.
type LocalSignOutAction struct {
	Session            SignedInSession
	GlobalSignOutError error
	RevokeTokenError   error
}

func (LocalSignOutAction) ID() string { return "SignOut.LocalSignOutAction" }

func (a LocalSignOutAction) Execute(ctx context.Context, dispatcher machine.Dispatcher, env machine.Environment) {
	e, ok := signOutEnv(env)
	if !ok || e.Credentials == nil {
		dispatcher.Send(CredentialsClearFailed{Err: ErrMissingEnvironment})
		return
	}

	if err := e.Credentials.DeleteCredential(ctx, a.Session.UserID); err != nil {
		dispatcher.Send(CredentialsClearFailed{Err: err})
		return
	}
	if err := e.Credentials.DeleteDeviceMetadata(ctx, a.Session.Username); err != nil {
		dispatcher.Send(CredentialsClearFailed{Err: err})
		return
	}
	dispatcher.Send(CredentialsCleared{})
}

// NotifyCancelledAction is a fire-and-forget notification that the hosted
// sign-out was cancelled. It emits no events.
type NotifyCancelledAction struct{}

func (NotifyCancelledAction) ID() string { return "SignOut.NotifyCancelledAction" }

func (NotifyCancelledAction) Execute(ctx context.Context, dispatcher machine.Dispatcher, env machine.Environment) {
	if e, ok := signOutEnv(env); ok && e.Notifier != nil {
		e.Notifier.SignOutCancelled()
	}
}
