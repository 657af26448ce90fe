package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saahla-dz/saahla_be/internal/services/identity"
	"github.com/saahla-dz/saahla_be/internal/services/session"
	"github.com/saahla-dz/saahla_be/internal/store"
)

func newAuthApp() (*fiber.App, *AuthHandler) {
	kv := store.NewMemoryKV()
	ident := identity.New(kv)
	sess := session.New(kv, ident)

	h := &AuthHandler{
		Identity:  ident,
		Session:   sess,
		JWTSecret: "test-secret",
		Expires:   60,
	}

	app := fiber.New()
	app.Post("/api/auth/register", h.Register)
	app.Post("/api/auth/login", h.Login)
	app.Post("/api/auth/logout", h.Logout)
	app.Get("/api/auth/me", h.Me)
	return app, h
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestRegister_FreelancerHappyPath(t *testing.T) {
	app, _ := newAuthApp()

	resp, out := doJSON(t, app, fiber.MethodPost, "/api/auth/register", fiber.Map{
		"name":     "خالد",
		"email":    "Khaled@Example.com",
		"phone":    "0550123456",
		"password": "secret123",
		"type":     "freelancer",
		"wilaya":   "الجزائر",
	})

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, out["success"])

	user := out["data"].(map[string]any)["user"].(map[string]any)
	assert.Equal(t, "khaled@example.com", user["email"]) // normalized
	assert.Equal(t, "freelancer", user["type"])
	assert.NotContains(t, user, "password")

	var tokenCookie string
	for _, c := range resp.Cookies() {
		if c.Name == "sa_token" {
			tokenCookie = c.Value
		}
	}
	assert.NotEmpty(t, tokenCookie)

	// registration also sets the session pointer
	resp, out = doJSON(t, app, fiber.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "khaled@example.com", out["data"].(map[string]any)["email"])
}

func TestRegister_ValidationErrors(t *testing.T) {
	app, _ := newAuthApp()

	resp, out := doJSON(t, app, fiber.MethodPost, "/api/auth/register", fiber.Map{
		"email":    "not-an-email",
		"password": "123",
		"type":     "freelancer",
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, false, out["success"])

	errs := out["errors"].(map[string]any)
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
	assert.Contains(t, errs, "wilaya")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	app, _ := newAuthApp()

	body := fiber.Map{
		"email":    "dup@example.com",
		"password": "secret123",
		"type":     "client",
	}
	_, out := doJSON(t, app, fiber.MethodPost, "/api/auth/register", body)
	require.Equal(t, true, out["success"])

	_, out = doJSON(t, app, fiber.MethodPost, "/api/auth/register", body)
	assert.Equal(t, false, out["success"])
	errs := out["errors"].(map[string]any)
	msgs := errs["email"].([]any)
	assert.Equal(t, "هذا البريد الإلكتروني مسجل بالفعل.", msgs[0])
}

func TestLogin_ByEmailAndByPhone(t *testing.T) {
	app, _ := newAuthApp()

	_, out := doJSON(t, app, fiber.MethodPost, "/api/auth/register", fiber.Map{
		"email":    "login@example.com",
		"phone":    "0660111222",
		"password": "secret123",
		"type":     "client",
	})
	require.Equal(t, true, out["success"])

	_, out = doJSON(t, app, fiber.MethodPost, "/api/auth/login", fiber.Map{
		"identifier": "login@example.com",
		"password":   "secret123",
	})
	assert.Equal(t, true, out["success"])

	_, out = doJSON(t, app, fiber.MethodPost, "/api/auth/login", fiber.Map{
		"identifier": "0660111222",
		"password":   "secret123",
	})
	assert.Equal(t, true, out["success"])
}

func TestLogin_WrongPasswordGenericMessage(t *testing.T) {
	app, _ := newAuthApp()

	_, out := doJSON(t, app, fiber.MethodPost, "/api/auth/register", fiber.Map{
		"email":    "login@example.com",
		"password": "secret123",
		"type":     "client",
	})
	require.Equal(t, true, out["success"])

	_, out = doJSON(t, app, fiber.MethodPost, "/api/auth/login", fiber.Map{
		"identifier": "login@example.com",
		"password":   "wrongpass",
	})
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "البيانات المدخلة غير صحيحة.", out["message"])

	// unknown account gets the same message
	_, out = doJSON(t, app, fiber.MethodPost, "/api/auth/login", fiber.Map{
		"identifier": "ghost@example.com",
		"password":   "whatever1",
	})
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "البيانات المدخلة غير صحيحة.", out["message"])
}

func TestLogout_ClearsSession(t *testing.T) {
	app, _ := newAuthApp()

	_, out := doJSON(t, app, fiber.MethodPost, "/api/auth/register", fiber.Map{
		"email":    "bye@example.com",
		"password": "secret123",
		"type":     "client",
	})
	require.Equal(t, true, out["success"])

	resp, out := doJSON(t, app, fiber.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, out["success"])

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
