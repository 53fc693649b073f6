package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/business-dashboard/internal/application/dto"
	"github.com/tu-usuario/business-dashboard/internal/domain"
	"github.com/tu-usuario/business-dashboard/pkg/jwt"
)

func newTestUseCase(t *testing.T) *AuthUseCase {
	t.Helper()
	uc, err := NewAuthUseCase(JWTConfig{Secret: "test-secret", ExpMinutes: 5, Issuer: "test"})
	require.NoError(t, err)
	return uc
}

func TestLogin_CuentasDemoValidas(t *testing.T) {
	uc := newTestUseCase(t)

	cases := []struct {
		username, password, role string
	}{
		{"admin", "admin123", RoleAdmin},
		{"manager", "manager123", RoleManager},
		{"store", "store123", RoleStoreManager},
	}
	for _, tc := range cases {
		out, err := uc.Login(dto.LoginRequest{Username: tc.username, Password: tc.password, Role: tc.role})
		require.NoError(t, err, "login de %s", tc.username)
		assert.NotEmpty(t, out.Token)
		assert.Equal(t, tc.username, out.User.Username)
		assert.Equal(t, tc.role, out.User.Role)

		username, role, err := jwt.Parse("test-secret", out.Token)
		require.NoError(t, err)
		assert.Equal(t, tc.username, username)
		assert.Equal(t, tc.role, role)
	}
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := newTestUseCase(t)
	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "otra", Role: RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_RolEquivocadoFalla(t *testing.T) {
	// Credenciales correctas con rol ajeno no inician sesión.
	uc := newTestUseCase(t)
	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "admin123", Role: RoleManager})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newTestUseCase(t)
	_, err := uc.Login(dto.LoginRequest{Username: "root", Password: "admin123", Role: RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRoles_ListaLosTres(t *testing.T) {
	uc := newTestUseCase(t)
	assert.Equal(t, []string{RoleAdmin, RoleManager, RoleStoreManager}, uc.Roles())
}
