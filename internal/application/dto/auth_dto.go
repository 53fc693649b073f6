package dto

// LoginRequest credenciales de acceso. El rol se valida junto con la
// contraseña: un par usuario/contraseña correcto con rol equivocado falla.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserResponse usuario autenticado (sin credenciales).
type UserResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse token emitido más el usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
