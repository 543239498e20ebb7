package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret")

	token, err := m.Generate("user-1", "user@example.com")
	require.NoError(t, err)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	token, err := NewTokenManager("secret-a").Generate("user-1", "user@example.com")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b").Validate(token)
	assert.Error(t, err)
}

func TestTokenGarbageRejected(t *testing.T) {
	_, err := NewTokenManager("secret").Validate("not-a-token")
	assert.Error(t, err)
}

func TestIdentityZeroValueIsAnonymous(t *testing.T) {
	assert.True(t, Identity{}.Anonymous())
	assert.False(t, Identity{UserID: "u1"}.Anonymous())
}
