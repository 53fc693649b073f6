package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/business-dashboard/internal/application/auth"
	"github.com/tu-usuario/business-dashboard/internal/application/dto"
	"github.com/tu-usuario/business-dashboard/internal/domain"
)

func buildAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	uc, err := auth.NewAuthUseCase(auth.JWTConfig{Secret: testSecret, ExpMinutes: 5, Issuer: "test"})
	require.NoError(t, err)
	app := fiber.New()
	h := NewAuthHandler(uc)
	app.Post("/api/auth/login", h.Login)
	app.Get("/api/auth/roles", h.Roles)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBody
}

func TestLoginEndpoint_CredencialesValidas(t *testing.T) {
	app := buildAuthApp(t)
	status, body := postJSON(t, app, "/api/auth/login",
		`{"username":"admin","password":"admin123","role":"Admin"}`)
	require.Equal(t, fiber.StatusOK, status)

	var out dto.LoginResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "admin", out.User.Username)
	assert.Equal(t, auth.RoleAdmin, out.User.Role)
}

func TestLoginEndpoint_CredencialesInvalidas(t *testing.T) {
	app := buildAuthApp(t)
	status, body := postJSON(t, app, "/api/auth/login",
		`{"username":"admin","password":"mala","role":"Admin"}`)
	require.Equal(t, fiber.StatusUnauthorized, status)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "UNAUTHORIZED", out.Code)
}

func TestLoginEndpoint_CamposFaltantes(t *testing.T) {
	app := buildAuthApp(t)
	status, _ := postJSON(t, app, "/api/auth/login", `{"username":"admin"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

// ── Mapeo de errores de reportes ──────────────────────────────────────────

func TestReportError_DatasetAusenteEs409(t *testing.T) {
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return reportError(c, &domain.DatasetMissingError{Files: []string{"sales.csv", "inventory.csv"}})
	})
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/x", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "DATA_MISSING", out.Code)
	assert.Equal(t, []string{"sales.csv", "inventory.csv"}, out.Files)
}

func TestReportError_PeriodoInvalidoEs400(t *testing.T) {
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return reportError(c, domain.ErrInvalidPeriod)
	})
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
