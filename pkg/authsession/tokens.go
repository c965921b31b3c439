package authsession

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens are the authorization artifacts of an established session.
type Tokens struct {
	AccessToken  string    `json:"access_token"`
	IDToken      string    `json:"id_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at,omitzero"`
}

// IsEstablished reports whether the token set is complete enough to count as
// established authorization: an access token plus a refresh token to renew it.
func (t Tokens) IsEstablished() bool {
	return t.AccessToken != "" && t.RefreshToken != ""
}

// Expired reports whether the access token has expired at the given instant.
// When ExpiresAt was not recorded, the expiry is read from the access token's
// JWT exp claim; a token whose expiry cannot be determined is treated as
// expired so callers refresh rather than present a stale credential.
func (t Tokens) Expired(now time.Time) bool {
	expiry := t.ExpiresAt
	if expiry.IsZero() {
		parsed, err := t.accessTokenExpiry()
		if err != nil {
			return true
		}
		expiry = parsed
	}
	return !now.Before(expiry)
}

// accessTokenExpiry extracts the exp claim without verifying the signature;
// the token was already verified by the identity provider exchange and is
// only inspected locally for scheduling refreshes.
func (t Tokens) accessTokenExpiry() (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(t.AccessToken, claims); err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, ErrNoTokenExpiry
	}
	return exp.Time, nil
}
