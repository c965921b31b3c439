package authsession

import (
	"github.com/dmitrymomot/authstate/pkg/machine"
	"github.com/dmitrymomot/authstate/pkg/signout"
)

// Resolver implements the top-level auth session transition table and
// delegates sign-out events to the sign-out sub-resolver while a sign-out is
// in progress. Combinations outside the table resolve to the unchanged state.
type Resolver struct {
	signOut signout.Resolver
}

// NewResolver creates the auth session resolver.
func NewResolver() Resolver {
	return Resolver{signOut: signout.NewResolver()}
}

func (r Resolver) Resolve(current machine.State, event machine.Event) machine.Resolution {
	switch state := current.(type) {
	case NotConfigured:
		if _, ok := event.(Configure); ok {
			return machine.NewResolution(Configured{})
		}
		return machine.Unchanged(current)
	case Configured:
		return resolveIdle(current, event)
	case SigningIn:
		return resolveSigningIn(current, event)
	case SignedIn:
		return resolveSignedIn(state, event)
	case RefreshingSession:
		return resolveRefreshing(state, event)
	case SigningOut:
		return r.resolveSigningOut(state, event)
	case SignedOut:
		return resolveIdle(current, event)
	case Error:
		if state.Err.Recoverable {
			return resolveIdle(current, event)
		}
		return machine.Unchanged(current)
	default:
		return machine.Unchanged(current)
	}
}

// resolveIdle handles the states a new sign-in may start from.
func resolveIdle(current machine.State, event machine.Event) machine.Resolution {
	ev, ok := event.(InitiateSignIn)
	if !ok {
		return machine.Unchanged(current)
	}

	// Malformed payloads become an error state, never a thrown error.
	if ev.Username == "" || ev.Password == "" {
		return machine.NewResolution(Error{Err: AuthError{
			Message:     "sign-in requires a username and a password",
			Recoverable: true,
		}})
	}

	return machine.NewResolution(
		SigningIn{Username: ev.Username},
		SignInAction{Username: ev.Username, Password: ev.Password},
	)
}

func resolveSigningIn(current machine.State, event machine.Event) machine.Resolution {
	switch ev := event.(type) {
	case SignInCompleted:
		return machine.NewResolution(SignedIn{Data: ev.Data})
	case ThrowError:
		return machine.NewResolution(Error{Err: ev.Err})
	default:
		return machine.Unchanged(current)
	}
}

func resolveSignedIn(current SignedIn, event machine.Event) machine.Resolution {
	switch ev := event.(type) {
	case RefreshSession:
		return machine.NewResolution(
			RefreshingSession{Data: current.Data},
			RefreshSessionAction{Data: current.Data},
		)
	case InitiateSignOut:
		return machine.NewResolution(
			SigningOut{Data: current.Data, Sub: signout.NotStarted{}},
			forwardAction{Event: signOutEntryEvent(current.Data, ev.Options)},
		)
	default:
		return machine.Unchanged(current)
	}
}

func resolveRefreshing(current RefreshingSession, event machine.Event) machine.Resolution {
	switch ev := event.(type) {
	case SessionRefreshed:
		data := current.Data
		data.Tokens = ev.Tokens
		return machine.NewResolution(SignedIn{Data: data})
	case ThrowError:
		if ev.Err.Recoverable {
			// A transient refresh failure keeps the session; the caller may
			// retry with the existing refresh token.
			return machine.NewResolution(SignedIn{Data: current.Data})
		}
		return machine.NewResolution(Error{Err: ev.Err})
	default:
		return machine.Unchanged(current)
	}
}

// resolveSigningOut delegates to the sign-out sub-resolver and folds its
// terminal states back into the top-level machine.
func (r Resolver) resolveSigningOut(current SigningOut, event machine.Event) machine.Resolution {
	sub := r.signOut.Resolve(current.Sub, event)

	switch next := sub.NewState.(type) {
	case signout.SignedOut:
		return machine.Resolution{
			NewState: SignedOut{Data: next.Data},
			Actions:  sub.Actions,
		}
	case signout.Error:
		if next.Err.Recoverable {
			// A cancelled hosted sign-out restores the signed-in session.
			return machine.Resolution{
				NewState: SignedIn{Data: current.Data},
				Actions:  sub.Actions,
			}
		}
		return machine.Resolution{
			NewState: Error{Err: AuthError{
				Message: "sign-out failed",
				Cause:   next.Err,
			}},
			Actions: sub.Actions,
		}
	default:
		if machine.StateEqual(sub.NewState, current.Sub) && len(sub.Actions) == 0 {
			return machine.Unchanged(current)
		}
		return machine.Resolution{
			NewState: SigningOut{Data: current.Data, Sub: sub.NewState},
			Actions:  sub.Actions,
		}
	}
}

func signOutEntryEvent(data SignedInData, opts SignOutOptions) machine.Event {
	session := data.SignOutSnapshot()
	switch {
	case opts.HostedUI:
		return signout.InvokeHostedFlow{
			Session:       session,
			GlobalSignOut: opts.Global,
			BypassCancel:  opts.BypassCancel,
		}
	case opts.Global:
		return signout.SignOutGlobally{Session: session}
	default:
		return signout.RevokeToken{Session: session}
	}
}
