package signout

import (
	"github.com/dmitrymomot/authstate/pkg/machine"
)

// Resolver implements the sign-out transition table. Any (state, event)
// combination outside the table resolves to the unchanged state with no
// actions, so events arriving out of phase are ignored rather than failing.
// SignedOut and Error are terminal.
type Resolver struct{}

// NewResolver creates the sign-out resolver.
func NewResolver() Resolver { return Resolver{} }

// InitialState returns the state a fresh sign-out flow starts in.
func (Resolver) InitialState() machine.State { return NotStarted{} }

func (Resolver) Resolve(current machine.State, event machine.Event) machine.Resolution {
	switch state := current.(type) {
	case NotStarted:
		return resolveNotStarted(current, event)
	case SigningOutViaHostedFlow:
		return resolveHostedFlow(state, event)
	case SigningOutGlobally:
		return resolveGlobal(state, event)
	case RevokingToken, BuildingRevokeTokenError:
		return resolveRevoking(current, event)
	case SigningOutLocally:
		return resolveLocal(state, event)
	default:
		return machine.Unchanged(current)
	}
}

func resolveNotStarted(current machine.State, event machine.Event) machine.Resolution {
	switch ev := event.(type) {
	case InvokeHostedFlow:
		next := SigningOutViaHostedFlow{
			Session:       ev.Session,
			GlobalSignOut: ev.GlobalSignOut,
			BypassCancel:  ev.BypassCancel,
		}
		return machine.NewResolution(next, HostedSignOutAction{
			Session:       ev.Session,
			GlobalSignOut: ev.GlobalSignOut,
			BypassCancel:  ev.BypassCancel,
		})
	case SignOutGlobally:
		return machine.NewResolution(
			SigningOutGlobally{Session: ev.Session},
			GlobalSignOutAction{Session: ev.Session},
		)
	case RevokeToken:
		return machine.NewResolution(
			RevokingToken{Session: ev.Session},
			RevokeTokenAction{Session: ev.Session, GlobalSignOutError: ev.GlobalSignOutError},
		)
	case SignOutLocally:
		return machine.NewResolution(
			SigningOutLocally{Session: ev.Session, GlobalSignOutError: ev.GlobalSignOutError, RevokeTokenError: ev.RevokeTokenError},
			LocalSignOutAction{Session: ev.Session, GlobalSignOutError: ev.GlobalSignOutError, RevokeTokenError: ev.RevokeTokenError},
		)
	default:
		return machine.Unchanged(current)
	}
}

func resolveHostedFlow(current SigningOutViaHostedFlow, event machine.Event) machine.Resolution {
	switch ev := event.(type) {
	case SignOutGlobally:
		return machine.NewResolution(
			SigningOutGlobally{Session: ev.Session},
			GlobalSignOutAction{Session: ev.Session},
		)
	case RevokeToken:
		return machine.NewResolution(
			RevokingToken{Session: ev.Session},
			RevokeTokenAction{Session: ev.Session, GlobalSignOutError: ev.GlobalSignOutError},
		)
	case UserCancelled:
		return machine.NewResolution(
			Error{Err: NewUserCancelledError()},
			NotifyCancelledAction{},
		)
	default:
		return machine.Unchanged(current)
	}
}

func resolveGlobal(current SigningOutGlobally, event machine.Event) machine.Resolution {
	switch ev := event.(type) {
	case RevokeToken:
		return machine.NewResolution(
			RevokingToken{Session: ev.Session},
			RevokeTokenAction{Session: ev.Session, GlobalSignOutError: ev.GlobalSignOutError},
		)
	case GlobalSignOutFailed:
		return machine.NewResolution(
			BuildingRevokeTokenError{Session: ev.Session, GlobalSignOutError: ev.Err},
			BuildRevokeErrorAction{Session: ev.Session, GlobalSignOutError: ev.Err},
		)
	default:
		return machine.Unchanged(current)
	}
}

func resolveRevoking(current machine.State, event machine.Event) machine.Resolution {
	switch ev := event.(type) {
	case SignOutLocally:
		return machine.NewResolution(
			SigningOutLocally{Session: ev.Session, GlobalSignOutError: ev.GlobalSignOutError, RevokeTokenError: ev.RevokeTokenError},
			LocalSignOutAction{Session: ev.Session, GlobalSignOutError: ev.GlobalSignOutError, RevokeTokenError: ev.RevokeTokenError},
		)
	default:
		return machine.Unchanged(current)
	}
}

func resolveLocal(current SigningOutLocally, event machine.Event) machine.Resolution {
	switch ev := event.(type) {
	case CredentialsCleared:
		return machine.NewResolution(SignedOut{Data: SignedOutData{
			Username:           current.Session.Username,
			GlobalSignOutError: current.GlobalSignOutError,
			RevokeTokenError:   current.RevokeTokenError,
		}})
	case CredentialsClearFailed:
		return machine.NewResolution(Error{Err: NewLocalSignOutError(ev.Err)})
	default:
		return machine.Unchanged(current)
	}
}
