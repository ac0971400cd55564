package middleware

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	"github.com/doganzub/calendar-app/auth"
)

const identityKey = "identity"

// Protected resolves the session from the access_token cookie and stores the
// verified identity in locals. The two failure modes stay distinct: a request
// without the cookie was never logged in (401), while a cookie holding a
// garbled, tampered or expired token is rejected as not found (404).
func Protected(ts *auth.TokenService) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:    ts.SigningKey(),
		SigningMethod: jwt.SigningMethodHS256.Alg(),
		TokenLookup:   "cookie:" + auth.CookieName,
		ErrorHandler:  jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			userToken, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return jwtError(c, auth.ErrTokenInvalid)
			}

			claims, ok := userToken.Claims.(jwt.MapClaims)
			if !ok {
				return jwtError(c, auth.ErrTokenInvalid)
			}

			userID, err := extractUserID(claims)
			if err != nil {
				return jwtError(c, err)
			}

			username, _ := claims["sub"].(string)
			role, _ := claims["role"].(string)
			if username == "" {
				return jwtError(c, auth.ErrTokenInvalid)
			}

			c.Locals(identityKey, &auth.Identity{
				ID:       userID,
				Username: username,
				Role:     auth.ParseRole(role),
			})
			return c.Next()
		},
	})
}

// CurrentIdentity returns the identity stored by Protected, or nil.
func CurrentIdentity(c *fiber.Ctx) *auth.Identity {
	identity, _ := c.Locals(identityKey).(*auth.Identity)
	return identity
}

// extractUserID handles the numeric formats the id claim may decode into.
func extractUserID(claims jwt.MapClaims) (uint, error) {
	idVal := claims["id"]
	if idVal == nil {
		return 0, auth.ErrTokenInvalid
	}

	switch v := idVal.(type) {
	case float64:
		return uint(v), nil
	case string:
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: bad id claim", auth.ErrTokenInvalid)
		}
		return uint(parsed), nil
	default:
		return 0, fmt.Errorf("%w: unsupported id type %T", auth.ErrTokenInvalid, v)
	}
}

func jwtError(c *fiber.Ctx, err error) error {
	if c.Cookies(auth.CookieName) == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "authentication_required",
			"message": "Not logged in",
		})
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error":   "not_found",
		"message": "Not found",
	})
}
