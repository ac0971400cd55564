package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	token, err := ts.Issue(42, "ayse", RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := ts.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), identity.ID)
	assert.Equal(t, "ayse", identity.Username)
	assert.Equal(t, RoleAdmin, identity.Role)
}

func TestTokenService_Expiry(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	token, err := ts.IssueWithTTL(7, "mehmet", RoleUser, -time.Minute)
	require.NoError(t, err)

	identity, err := ts.Verify(token)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_TamperedToken(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	token, err := ts.Issue(7, "mehmet", RoleUser)
	require.NoError(t, err)

	// Flip one byte in the payload segment.
	tampered := []byte(token)
	pos := len(tampered) / 2
	if tampered[pos] == 'A' {
		tampered[pos] = 'B'
	} else {
		tampered[pos] = 'A'
	}

	identity, err := ts.Verify(string(tampered))
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-one", time.Hour)
	verifier := NewTokenService("secret-two", time.Hour)

	token, err := issuer.Issue(7, "mehmet", RoleUser)
	require.NoError(t, err)

	identity, err := verifier.Verify(token)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_AlgorithmPinned(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	// A token signed with a different HMAC variant and the same secret must
	// be rejected: the verifier only ever accepts HS256.
	claims := Claims{
		UserID: 7,
		Role:   RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "mehmet",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	identity, err := ts.Verify(foreign)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_MalformedToken(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a jwt", token: "garbage"},
		{name: "two segments", token: "aaaa.bbbb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := ts.Verify(tt.token)
			assert.Nil(t, identity)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

func TestTokenService_MissingSubject(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	claims := Claims{
		UserID: 7,
		Role:   RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	identity, err := ts.Verify(token)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
