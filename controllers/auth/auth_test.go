package authController_test

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authController "lms/controllers/auth"
	"lms/routers/authRoutes"
	"lms/services/identity"
	"lms/store"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	st, err := store.Open(t.TempDir() + "/lms.db")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app, &authController.Controller{Identity: identity.New(st, "admin@lms.local", "secret")})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return resp, envelope
}

func TestSignupReturnsSanitizedUser(t *testing.T) {
	app := newApp(t)

	resp, envelope := postJSON(t, app, "/auth/signup",
		`{"email":"ann@x.com","password":"pw123","username":"Ann"}`)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, envelope["status"])

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "Ann", data["username"])
	assert.Empty(t, data["password"])
}

func TestSignupDuplicateEmail(t *testing.T) {
	app := newApp(t)
	postJSON(t, app, "/auth/signup", `{"email":"ann@x.com","password":"pw123","username":"Ann"}`)

	resp, envelope := postJSON(t, app, "/auth/signup",
		`{"email":"ann@x.com","password":"other","username":"Ann2"}`)

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Email is already registered!", envelope["message"])
}

func TestSignupValidation(t *testing.T) {
	app := newApp(t)

	resp, _ := postJSON(t, app, "/auth/signup", `{"email":"not-an-email","password":"pw123","username":"Ann"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestSigninBootstrapAdmin(t *testing.T) {
	app := newApp(t)

	resp, envelope := postJSON(t, app, "/auth/signin",
		`{"email":"admin@lms.local","password":"secret"}`)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "ADMIN", data["role"])
}

func TestSigninWrongPassword(t *testing.T) {
	app := newApp(t)

	resp, envelope := postJSON(t, app, "/auth/signin",
		`{"email":"admin@lms.local","password":"wrong"}`)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials!", envelope["message"])
}

func TestProviderSignin(t *testing.T) {
	app := newApp(t)

	resp, envelope := postJSON(t, app, "/auth/provider", `{}`)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "USER", data["role"])
	assert.NotEmpty(t, data["id"])
}

func TestSignout(t *testing.T) {
	app := newApp(t)
	postJSON(t, app, "/auth/signup", `{"email":"ann@x.com","password":"pw123","username":"Ann"}`)

	resp, envelope := postJSON(t, app, "/auth/signout", `{}`)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Signed out.", envelope["message"])
}
