package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"yafrican/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateJWT(7, "Amina", "customer", "amina@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := parseToken(token)
	require.NoError(t, err)
	assert.Equal(t, float64(7), claims["userId"])
	assert.Equal(t, "Amina", claims["name"])
	assert.Equal(t, "customer", claims["role"])
	assert.Equal(t, "amina@example.com", claims["email"])
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := parseToken("not-a-token")
	assert.Error(t, err)
}

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", JWTMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": c.Locals("userId")})
	})
	return app
}

func TestJWTMiddlewareAcceptsBearerHeader(t *testing.T) {
	app := newProtectedApp()

	token, err := GenerateJWT(7, "Amina", "customer", "amina@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTMiddlewareAcceptsCookie(t *testing.T) {
	app := newProtectedApp()

	token, err := GenerateJWT(7, "Amina", "customer", "amina@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTMiddlewareRejectsMissingToken(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareRejectsBadToken(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer bogus.token.value")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
