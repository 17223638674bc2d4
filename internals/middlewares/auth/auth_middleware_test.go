package auth

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"universe_backend/internals/configs"
	helper "universe_backend/internals/helpers"
)

func testApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	app.Get("/secure", VerifyToken(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": UserID(c), "role": Role(c)})
	})
	app.Get("/admin", VerifyToken(), CheckRole("superAdmin", "admin"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestVerifyTokenMissing(t *testing.T) {
	app := testApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/secure", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Access denied. No token provided.")
}

func TestVerifyTokenInvalid(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := testApp()

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Invalid token.")
}

func TestVerifyTokenBearerFallback(t *testing.T) {
	configs.JWTSecret = "test-secret"
	token, err := helper.GenerateJWT("user-1", "student", "andi")
	require.NoError(t, err)

	app := testApp()
	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"role":"student"`)
}

func TestVerifyTokenCookie(t *testing.T) {
	configs.JWTSecret = "test-secret"
	token, err := helper.GenerateJWT("user-2", "teacher", "budi")
	require.NoError(t, err)

	app := testApp()
	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Cookie", helper.AuthCookieName+"="+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCheckRoleDenies(t *testing.T) {
	configs.JWTSecret = "test-secret"
	token, err := helper.GenerateJWT("user-3", "student", "cici")
	require.NoError(t, err)

	app := testApp()
	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Access denied. Insufficient permissions.")
}

func TestCheckRoleAllows(t *testing.T) {
	configs.JWTSecret = "test-secret"
	token, err := helper.GenerateJWT("user-4", "admin", "dedi")
	require.NoError(t, err)

	app := testApp()
	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
