package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doganzub/calendar-app/auth"
	"github.com/doganzub/calendar-app/middleware"
)

func newTestApp(ts *auth.TokenService) *fiber.App {
	app := fiber.New()
	app.Get("/protected", middleware.Protected(ts), func(c *fiber.Ctx) error {
		return c.JSON(middleware.CurrentIdentity(c))
	})
	app.Get("/admin", middleware.Protected(ts), middleware.RequireRole(auth.RoleAdmin), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "ok"})
	})
	return app
}

func requestWithCookie(target, token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	}
	return req
}

func TestProtected_NoCookie(t *testing.T) {
	app := newTestApp(auth.NewTokenService("test-secret", time.Hour))

	resp, err := app.Test(requestWithCookie("/protected", ""))
	require.NoError(t, err)
	defer resp.Body.Close()

	// Never logged in: distinct from presenting a bad token.
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtected_GarbledCookie(t *testing.T) {
	app := newTestApp(auth.NewTokenService("test-secret", time.Hour))

	resp, err := app.Test(requestWithCookie("/protected", "not-a-token"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProtected_TamperedToken(t *testing.T) {
	ts := auth.NewTokenService("test-secret", time.Hour)
	app := newTestApp(ts)

	token, err := ts.Issue(2, "mehmet", auth.RoleUser)
	require.NoError(t, err)

	tampered := []byte(token)
	pos := len(tampered) / 2
	if tampered[pos] == 'A' {
		tampered[pos] = 'B'
	} else {
		tampered[pos] = 'A'
	}

	resp, err := app.Test(requestWithCookie("/protected", string(tampered)))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProtected_ExpiredToken(t *testing.T) {
	ts := auth.NewTokenService("test-secret", time.Hour)
	app := newTestApp(ts)

	token, err := ts.IssueWithTTL(2, "mehmet", auth.RoleUser, -time.Minute)
	require.NoError(t, err)

	resp, err := app.Test(requestWithCookie("/protected", token))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProtected_WrongSecret(t *testing.T) {
	app := newTestApp(auth.NewTokenService("test-secret", time.Hour))
	other := auth.NewTokenService("other-secret", time.Hour)

	token, err := other.Issue(2, "mehmet", auth.RoleUser)
	require.NoError(t, err)

	resp, err := app.Test(requestWithCookie("/protected", token))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProtected_ValidToken(t *testing.T) {
	ts := auth.NewTokenService("test-secret", time.Hour)
	app := newTestApp(ts)

	token, err := ts.Issue(2, "mehmet", auth.RoleUser)
	require.NoError(t, err)

	resp, err := app.Test(requestWithCookie("/protected", token))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var identity auth.Identity
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&identity))
	assert.Equal(t, uint(2), identity.ID)
	assert.Equal(t, "mehmet", identity.Username)
	assert.Equal(t, auth.RoleUser, identity.Role)
}

func TestRequireRole_UserDenied(t *testing.T) {
	ts := auth.NewTokenService("test-secret", time.Hour)
	app := newTestApp(ts)

	token, err := ts.Issue(2, "mehmet", auth.RoleUser)
	require.NoError(t, err)

	resp, err := app.Test(requestWithCookie("/admin", token))
	require.NoError(t, err)
	defer resp.Body.Close()

	// Authenticated but insufficiently privileged: a warning, not the
	// not-logged-in response.
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_AdminAllowed(t *testing.T) {
	ts := auth.NewTokenService("test-secret", time.Hour)
	app := newTestApp(ts)

	token, err := ts.Issue(1, "ayse", auth.RoleAdmin)
	require.NoError(t, err)

	resp, err := app.Test(requestWithCookie("/admin", token))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
