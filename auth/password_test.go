package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	digest, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, digest)

	assert.True(t, VerifyPassword("correct horse battery staple", digest))
	assert.False(t, VerifyPassword("correct horse battery stapler", digest))
	assert.False(t, VerifyPassword("", digest))
}

func TestHashPassword_SaltedDigestsDiffer(t *testing.T) {
	first, err := HashPassword("secret123")
	require.NoError(t, err)
	second, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("secret123", first))
	assert.True(t, VerifyPassword("secret123", second))
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	tests := []struct {
		name   string
		digest string
	}{
		{name: "empty digest", digest: ""},
		{name: "not a bcrypt digest", digest: "plaintext-in-storage"},
		{name: "truncated digest", digest: "$2a$10$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Corrupted storage must verify false, never panic.
			assert.False(t, VerifyPassword("secret123", tt.digest))
		})
	}
}
