package auth

import "errors"

// Role is the flat role tag carried in the session token. Expert/secretary/
// owner are capability flags on the user row, not roles; they only drive
// row-level filtering.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

var (
	// ErrNoSession means the request carried no resolvable identity.
	ErrNoSession = errors.New("no active session")
	// ErrTokenInvalid means a token was present but malformed, tampered
	// with, signed with the wrong key/algorithm, or expired.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrForbidden means the identity is valid but the role is insufficient.
	ErrForbidden = errors.New("insufficient role")
)

// Identity is the resolved result of a verified session token.
type Identity struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// ParseRole maps a stored role string onto the closed role set. Unknown
// tags degrade to the least-privileged role.
func ParseRole(s string) Role {
	if Role(s) == RoleAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// Require allows the identity through when it matches one of the allowed
// roles. A nil identity is "not logged in", a mismatched role is "forbidden";
// callers must keep the two outcomes distinct.
func Require(identity *Identity, allowed ...Role) error {
	if identity == nil {
		return ErrNoSession
	}
	for _, role := range allowed {
		if identity.Role == role {
			return nil
		}
	}
	return ErrForbidden
}
