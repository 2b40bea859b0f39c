package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteyonetim.app/models"
	"siteyonetim.app/pkg/authsession"
	"siteyonetim.app/services"
)

type stubAuth struct {
	services.IAuthService
	users map[string]authsession.User
}

func (s stubAuth) AuthenticateToken(_ context.Context, token string) (*authsession.User, error) {
	u, ok := s.users[token]
	if !ok {
		return nil, services.ErrSessionInvalid
	}
	return &u, nil
}

func newApp() *fiber.App {
	auth := stubAuth{users: map[string]authsession.User{
		"admin":    {ID: 1, Role: models.RoleAdmin},
		"resident": {ID: 2, Role: models.RoleUser},
	}}
	app := fiber.New()
	app.Use(Session(auth, nil))
	app.Get("/private", RequireAuth, func(c *fiber.Ctx) error {
		u, _ := authsession.FromContext(c.UserContext()).User()
		return c.JSON(fiber.Map{"id": u.ID})
	})
	app.Post("/managers", RequireRole(Managers...), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/page", PageAuth, func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func request(t *testing.T, app *fiber.App, method, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRequireAuth(t *testing.T) {
	app := newApp()

	assert.Equal(t, fiber.StatusUnauthorized, request(t, app, http.MethodGet, "/private", "").StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, request(t, app, http.MethodGet, "/private", "bilinmeyen").StatusCode)
	assert.Equal(t, fiber.StatusOK, request(t, app, http.MethodGet, "/private", "resident").StatusCode)
}

func TestRequireRole(t *testing.T) {
	app := newApp()

	assert.Equal(t, fiber.StatusUnauthorized, request(t, app, http.MethodPost, "/managers", "").StatusCode)
	assert.Equal(t, fiber.StatusForbidden, request(t, app, http.MethodPost, "/managers", "resident").StatusCode)
	assert.Equal(t, fiber.StatusNoContent, request(t, app, http.MethodPost, "/managers", "admin").StatusCode)
}

func TestPageAuthRedirects(t *testing.T) {
	app := newApp()

	resp := request(t, app, http.MethodGet, "/page", "")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, LoginPath, resp.Header.Get(fiber.HeaderLocation))
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer  abc ", "abc", true},
		{"Basic abc", "", false},
		{"Bearer ", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		token, ok := bearerToken(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.token, token, tt.header)
	}
}
