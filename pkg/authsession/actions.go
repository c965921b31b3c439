package authsession

import (
	"context"

	"github.com/dmitrymomot/authstate/pkg/machine"
)

// authEnv extracts the auth environment from the engine environment.
func authEnv(env machine.Environment) (Environment, bool) {
	e, ok := env.(Environment)
	return e, ok
}

// SignInAction performs the identity-provider sign-in exchange. Success
// dispatches SignInCompleted; every failure is re-expressed as a ThrowError
// event carrying a recoverable classification.
type SignInAction struct {
	Username string
	Password string
}

func (SignInAction) ID() string { return "Auth.SignInAction" }

func (a SignInAction) Execute(ctx context.Context, dispatcher machine.Dispatcher, env machine.Environment) {
	e, ok := authEnv(env)
	if !ok || e.Provider == nil {
		dispatcher.Send(ThrowError{Err: AuthError{
			Message: "sign-in is not possible without an identity provider client",
			Cause:   ErrMissingProvider,
		}})
		return
	}

	data, err := e.Provider.SignIn(ctx, a.Username, a.Password)
	if err != nil {
		dispatcher.Send(ThrowError{Err: AuthError{
			Message:     "sign-in failed",
			Cause:       err,
			Recoverable: true,
		}})
		return
	}
	dispatcher.Send(SignInCompleted{Data: data})
}

// RefreshSessionAction exchanges the refresh token for a renewed token set.
type RefreshSessionAction struct {
	Data SignedInData
}

func (RefreshSessionAction) ID() string { return "Auth.RefreshSessionAction" }

func (a RefreshSessionAction) Execute(ctx context.Context, dispatcher machine.Dispatcher, env machine.Environment) {
	e, ok := authEnv(env)
	if !ok || e.Provider == nil {
		dispatcher.Send(ThrowError{Err: AuthError{
			Message: "session refresh is not possible without an identity provider client",
			Cause:   ErrMissingProvider,
		}})
		return
	}

	tokens, err := e.Provider.RefreshTokens(ctx, a.Data.Tokens.RefreshToken)
	if err != nil {
		dispatcher.Send(ThrowError{Err: AuthError{
			Message:     "session refresh failed",
			Cause:       err,
			Recoverable: true,
		}})
		return
	}
	dispatcher.Send(SessionRefreshed{Tokens: tokens})
}

// forwardAction dispatches a single follow-up event. It lets a resolution
// hand an event to the next phase of a flow after its own state commit.
type forwardAction struct {
	Event machine.Event
}

func (forwardAction) ID() string { return "Auth.ForwardEventAction" }

func (a forwardAction) Execute(ctx context.Context, dispatcher machine.Dispatcher, env machine.Environment) {
	dispatcher.Send(a.Event)
}
