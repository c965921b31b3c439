package authsession

import (
	"time"

	"github.com/dmitrymomot/authstate/pkg/signout"
)

// SignedInData is the authenticated-identity snapshot of a session.
type SignedInData struct {
	Username   string    `json:"username"`
	UserID     string    `json:"user_id"`
	SignedInAt time.Time `json:"signed_in_at"`
	Tokens     Tokens    `json:"tokens"`
}

// SignOutSnapshot projects the session into the snapshot the sign-out
// sub-machine operates on.
func (d SignedInData) SignOutSnapshot() signout.SignedInSession {
	return signout.SignedInSession{
		Username:     d.Username,
		UserID:       d.UserID,
		AccessToken:  d.Tokens.AccessToken,
		RefreshToken: d.Tokens.RefreshToken,
	}
}

// PersistedCredential is the durable record promoted to the credential store
// once a session is established. The encoding must round-trip exactly; the
// store's codec owns the wire format.
type PersistedCredential struct {
	SignedInData SignedInData `json:"signed_in_data"`
}

// AuthError is carried by the terminal Error state. The recoverable flag
// partitions failures the caller can retry (validation problems, cancelled
// flows) from ones that need intervention.
type AuthError struct {
	Message     string
	Cause       error
	Recoverable bool
}

func (e AuthError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e AuthError) Unwrap() error { return e.Cause }
