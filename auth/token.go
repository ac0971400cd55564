package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "access_token"

// DefaultTokenTTL matches the login flow: sessions last an hour unless
// overridden per call.
const DefaultTokenTTL = 60 * time.Minute

// Claims is the token payload: subject is the username, id and role ride
// alongside the registered claims.
type Claims struct {
	UserID uint `json:"id"`
	Role   Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 session tokens against a single
// process-wide secret, initialized at startup and never rotated at runtime.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// SigningKey exposes the secret to the JWT middleware. It never leaves the
// process.
func (s *TokenService) SigningKey() []byte {
	return s.secret
}

// TTL returns the configured session lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue creates a signed token for the identity using the default TTL.
func (s *TokenService) Issue(userID uint, username string, role Role) (string, error) {
	return s.IssueWithTTL(userID, username, role, s.ttl)
}

// IssueWithTTL creates a signed token expiring after the given duration.
func (s *TokenService) IssueWithTTL(userID uint, username string, role Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry and returns the encoded identity.
// The signing algorithm is pinned to HS256: a token signed any other way is
// invalid regardless of its payload. Any failure yields ErrTokenInvalid,
// never a partially trusted identity.
func (s *TokenService) Verify(tokenString string) (*Identity, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.Subject == "" || claims.UserID == 0 {
		return nil, ErrTokenInvalid
	}

	return &Identity{
		ID:       claims.UserID,
		Username: claims.Subject,
		Role:     ParseRole(string(claims.Role)),
	}, nil
}
