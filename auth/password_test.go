package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("pw123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", hashed)

	ok, err := CheckPassword("pw123", hashed)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckPasswordMismatch(t *testing.T) {
	hashed, err := HashPassword("pw123", bcrypt.MinCost)
	require.NoError(t, err)

	ok, err := CheckPassword("wrong", hashed)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	// A malformed hash is a verification error, never a plain mismatch.
	ok, err := CheckPassword("pw123", "not-a-bcrypt-hash")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestCheckPasswordSentinel(t *testing.T) {
	ok, err := CheckPassword(SentinelPassword, SentinelPassword)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestHashPasswordEmbedsSalt(t *testing.T) {
	a, err := HashPassword("pw123", bcrypt.MinCost)
	require.NoError(t, err)
	b, err := HashPassword("pw123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
