package auth

import (
	"github.com/tu-usuario/business-dashboard/internal/application/dto"
	"github.com/tu-usuario/business-dashboard/internal/domain"
	"github.com/tu-usuario/business-dashboard/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Roles de la aplicación demo.
const (
	RoleAdmin        = "Admin"
	RoleManager      = "Manager"
	RoleStoreManager = "Store Manager"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

type account struct {
	username     string
	passwordHash []byte
	role         string
}

// AuthUseCase autenticación contra la tabla fija de usuarios demo. No hay
// registro ni gestión de cuentas: las credenciales son parte del producto.
type AuthUseCase struct {
	accounts []account
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso con las tres cuentas demo. Las
// contraseñas se hashean con bcrypt al construir, de modo que nunca quedan
// en claro en memoria más allá del arranque.
func NewAuthUseCase(jwtCfg JWTConfig) (*AuthUseCase, error) {
	demo := []struct {
		username, password, role string
	}{
		{"admin", "admin123", RoleAdmin},
		{"manager", "manager123", RoleManager},
		{"store", "store123", RoleStoreManager},
	}
	accounts := make([]account, 0, len(demo))
	for _, d := range demo {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account{username: d.username, passwordHash: hash, role: d.role})
	}
	return &AuthUseCase{accounts: accounts, jwtCfg: jwtCfg}, nil
}

// Login verifica usuario, contraseña y rol, y emite un JWT. Cualquier
// discrepancia devuelve ErrUnauthorized sin distinguir cuál campo falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	acc := uc.find(in.Username)
	if acc == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if in.Role != acc.role {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, acc.username, acc.role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.UserResponse{Username: acc.username, Role: acc.role},
	}, nil
}

// Roles devuelve los roles disponibles para el selector de login.
func (uc *AuthUseCase) Roles() []string {
	return []string{RoleAdmin, RoleManager, RoleStoreManager}
}

func (uc *AuthUseCase) find(username string) *account {
	for i := range uc.accounts {
		if uc.accounts[i].username == username {
			return &uc.accounts[i]
		}
	}
	return nil
}
