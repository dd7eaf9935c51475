package authValidator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestSignupValidator(t *testing.T) {
	app := fiber.New()
	app.Post("/signup", Signup(), func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedSignup").(*SignupRequest)
		require.True(t, ok)
		assert.Equal(t, "Amina", reqData.Name)
		return c.SendStatus(fiber.StatusOK)
	})

	valid := `{"name":"Amina","email":"amina@example.com","password":"secret-pass","otp":"123456"}`
	assert.Equal(t, fiber.StatusOK, postJSON(t, app, "/signup", valid))

	cases := map[string]string{
		"short name":     `{"name":"A","email":"amina@example.com","password":"secret-pass","otp":"123456"}`,
		"bad email":      `{"name":"Amina","email":"not-an-email","password":"secret-pass","otp":"123456"}`,
		"short password": `{"name":"Amina","email":"amina@example.com","password":"short","otp":"123456"}`,
		"bad otp":        `{"name":"Amina","email":"amina@example.com","password":"secret-pass","otp":"12ab56"}`,
		"bad role":       `{"name":"Amina","email":"amina@example.com","password":"secret-pass","otp":"123456","role":"root"}`,
	}
	for name, body := range cases {
		assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app, "/signup", body), name)
	}
}

func TestSendOTPValidator(t *testing.T) {
	app := fiber.New()
	app.Post("/send", SendOTP(), func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedSendOTP").(*SendOTPRequest)
		require.True(t, ok)
		return c.JSON(fiber.Map{"kind": reqData.Kind})
	})

	assert.Equal(t, fiber.StatusOK, postJSON(t, app, "/send", `{"email":"a@b.com","type":"password-reset"}`))

	// Kind defaults to registration when omitted
	assert.Equal(t, fiber.StatusOK, postJSON(t, app, "/send", `{"email":"a@b.com"}`))

	assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app, "/send", `{"email":"a@b.com","type":"unknown"}`))
	assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app, "/send", `{"email":"nope"}`))
}

func TestVerifyOTPValidator(t *testing.T) {
	app := fiber.New()
	app.Post("/verify", VerifyOTP(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	assert.Equal(t, fiber.StatusOK, postJSON(t, app, "/verify", `{"email":"a@b.com","otp":"654321"}`))
	assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app, "/verify", `{"email":"a@b.com","otp":"65432"}`))
}

func TestResetPasswordValidator(t *testing.T) {
	app := fiber.New()
	app.Patch("/reset", ResetPassword(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("PATCH", "/reset", strings.NewReader(`{"email":"a@b.com","otp":"654321","newPassword":"fresh-secret"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("PATCH", "/reset", strings.NewReader(`{"email":"a@b.com","otp":"654321","newPassword":"short"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
