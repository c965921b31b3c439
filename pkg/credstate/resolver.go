package credstate

import "github.com/dmitrymomot/authstate/pkg/machine"

// Resolver implements the credential-store machine: one operation in flight
// at a time, every outcome observed through Success or Error before the next
// operation starts.
type Resolver struct{}

// NewResolver creates the credential-store resolver.
func NewResolver() Resolver { return Resolver{} }

// InitialState returns the state a fresh store machine starts in.
func (Resolver) InitialState() machine.State { return NotConfigured{} }

func (Resolver) Resolve(current machine.State, event machine.Event) machine.Resolution {
	switch current.(type) {
	case NotConfigured, Idle:
		return resolveReady(current, event)
	case LoadingStoredCredentials, StoringCredentials, ClearingCredentials:
		return resolveInFlight(current, event)
	case Success, Error:
		if _, ok := event.(MoveToIdle); ok {
			return machine.NewResolution(Idle{})
		}
		return machine.Unchanged(current)
	default:
		return machine.Unchanged(current)
	}
}

func resolveReady(current machine.State, event machine.Event) machine.Resolution {
	switch ev := event.(type) {
	case LoadCredentialStore:
		return machine.NewResolution(LoadingStoredCredentials{}, LoadAction{})
	case StoreCredentials:
		return machine.NewResolution(
			StoringCredentials{Credential: ev.Credential},
			StoreAction{Credential: ev.Credential},
		)
	case ClearCredentials:
		return machine.NewResolution(ClearingCredentials{}, ClearAction{})
	default:
		return machine.Unchanged(current)
	}
}

func resolveInFlight(current machine.State, event machine.Event) machine.Resolution {
	switch ev := event.(type) {
	case CompletedOperation:
		return machine.NewResolution(Success{Credential: ev.Credential, Empty: ev.Empty})
	case ThrowError:
		return machine.NewResolution(Error{Err: ev.Err})
	default:
		return machine.Unchanged(current)
	}
}
