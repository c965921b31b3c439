package authsession

import (
	"github.com/dmitrymomot/authstate/pkg/machine"
	"github.com/dmitrymomot/authstate/pkg/signout"
)

// NotConfigured is the state before any configuration event arrives.
type NotConfigured struct{}

func (NotConfigured) Name() string { return "Auth.NotConfigured" }

// Configured is the idle state of a configured machine with no signed-in user.
type Configured struct{}

func (Configured) Name() string { return "Auth.Configured" }

// SigningIn waits for the identity-provider sign-in exchange.
type SigningIn struct {
	Username string
}

func (SigningIn) Name() string { return "Auth.SigningIn" }

// SignedIn is the established-session state: an authenticated identity with
// its authorization artifacts. It is the only state eligible for promotion
// to the persisted credential store.
type SignedIn struct {
	Data SignedInData
}

func (SignedIn) Name() string { return "Auth.SignedIn" }

// IsEstablished reports whether this state holds a complete established
// session: an identified user with established tokens.
func (s SignedIn) IsEstablished() bool {
	return s.Data.UserID != "" && s.Data.Tokens.IsEstablished()
}

// RefreshingSession waits for a token refresh exchange while keeping the
// current session data.
type RefreshingSession struct {
	Data SignedInData
}

func (RefreshingSession) Name() string { return "Auth.RefreshingSession" }

// SigningOut embeds the sign-out sub-machine. Data retains the signed-in
// snapshot so a recoverable sign-out failure can restore the session.
type SigningOut struct {
	Data SignedInData
	Sub  machine.State
}

func (SigningOut) Name() string { return "Auth.SigningOut" }

// SignedOut is the state after a completed sign-out.
type SignedOut struct {
	Data signout.SignedOutData
}

func (SignedOut) Name() string { return "Auth.SignedOut" }

// Error is the terminal failure state.
type Error struct {
	Err AuthError
}

func (Error) Name() string { return "Auth.Error" }
