package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/business-dashboard/internal/application/auth"
	"github.com/tu-usuario/business-dashboard/pkg/jwt"
)

const testSecret = "test-secret"

// ── Helpers ───────────────────────────────────────────────────────────────

func buildTestApp() *fiber.App {
	app := fiber.New()
	protected := app.Group("/", AuthMiddleware(testSecret))
	protected.Get("/report", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user": GetUsername(c), "role": GetRole(c)})
	})
	admin := protected.Group("/admin", RequireRole(auth.RoleAdmin))
	admin.Post("/bootstrap", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func tokenForRole(t *testing.T, username, role string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, username, role, "test", 5)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

// ── AuthMiddleware ────────────────────────────────────────────────────────

func TestAuthMiddleware_SinTokenDevuelve401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, fiber.MethodGet, "/report", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalidoDevuelve401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, fiber.MethodGet, "/report", "no-es-un-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FirmaAjenaDevuelve401(t *testing.T) {
	app := buildTestApp()
	token, err := jwt.Generate("otro-secret", "admin", auth.RoleAdmin, "test", 5)
	require.NoError(t, err)
	resp := doRequest(t, app, fiber.MethodGet, "/report", token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenValidoExponeUsuarioYRol(t *testing.T) {
	app := buildTestApp()
	token := tokenForRole(t, "manager", auth.RoleManager)
	resp := doRequest(t, app, fiber.MethodGet, "/report", token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// ── RequireRole ───────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp()
	token := tokenForRole(t, "admin", auth.RoleAdmin)
	resp := doRequest(t, app, fiber.MethodPost, "/admin/bootstrap", token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_ManagerRecibe403EnRutaAdmin(t *testing.T) {
	app := buildTestApp()
	token := tokenForRole(t, "manager", auth.RoleManager)
	resp := doRequest(t, app, fiber.MethodPost, "/admin/bootstrap", token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_StoreManagerRecibe403EnRutaAdmin(t *testing.T) {
	app := buildTestApp()
	token := tokenForRole(t, "store", auth.RoleStoreManager)
	resp := doRequest(t, app, fiber.MethodPost, "/admin/bootstrap", token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
