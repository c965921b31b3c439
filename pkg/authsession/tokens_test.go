package authsession_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authstate/pkg/authsession"
)

func signedJWT(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestTokens_IsEstablished(t *testing.T) {
	t.Parallel()

	assert.True(t, authsession.Tokens{AccessToken: "at", RefreshToken: "rt"}.IsEstablished())
	assert.False(t, authsession.Tokens{AccessToken: "at"}.IsEstablished())
	assert.False(t, authsession.Tokens{RefreshToken: "rt"}.IsEstablished())
	assert.False(t, authsession.Tokens{}.IsEstablished())
}

func TestTokens_Expired(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	t.Run("recorded expiry in the future", func(t *testing.T) {
		t.Parallel()
		tokens := authsession.Tokens{ExpiresAt: now.Add(time.Hour)}
		assert.False(t, tokens.Expired(now))
	})

	t.Run("recorded expiry in the past", func(t *testing.T) {
		t.Parallel()
		tokens := authsession.Tokens{ExpiresAt: now.Add(-time.Minute)}
		assert.True(t, tokens.Expired(now))
	})

	t.Run("expiry boundary counts as expired", func(t *testing.T) {
		t.Parallel()
		tokens := authsession.Tokens{ExpiresAt: now}
		assert.True(t, tokens.Expired(now))
	})

	t.Run("falls back to the access token exp claim", func(t *testing.T) {
		t.Parallel()
		tokens := authsession.Tokens{
			AccessToken: signedJWT(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()}),
		}
		assert.False(t, tokens.Expired(now))
		assert.True(t, tokens.Expired(now.Add(2*time.Hour)))
	})

	t.Run("token without exp claim is treated as expired", func(t *testing.T) {
		t.Parallel()
		tokens := authsession.Tokens{
			AccessToken: signedJWT(t, jwt.MapClaims{"sub": "user-1"}),
		}
		assert.True(t, tokens.Expired(now))
	})

	t.Run("opaque access token is treated as expired", func(t *testing.T) {
		t.Parallel()
		tokens := authsession.Tokens{AccessToken: "not-a-jwt"}
		assert.True(t, tokens.Expired(now))
	})
}
