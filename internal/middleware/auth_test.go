package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bloodlink/bloodlink-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestApp() *fiber.App {
	keys := services.NewFirebaseKeyClient("demo-project")
	app := fiber.New()
	app.Get("/protected", TokenProtected(keys), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestTokenProtectedMissingHeaderIs401(t *testing.T) {
	app := newAuthTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestTokenProtectedMalformedTokenIs403(t *testing.T) {
	app := newAuthTestApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestTokenProtectedWrongAlgorithmIs403(t *testing.T) {
	app := newAuthTestApp()

	// HMAC-signed tokens are rejected by the keyfunc before any key lookup.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "rahim@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("not-the-real-key"))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
