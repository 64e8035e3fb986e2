package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.Generate("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestTokenManager_Expired(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Generate("user-123")
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Generate("user-123")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_Garbage(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", time.Hour)

	_, err := tm.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
