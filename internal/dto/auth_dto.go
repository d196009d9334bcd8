package dto

type LoginRequest struct {
	Usuario    string `json:"usuario"    validate:"required"`
	Contrasena string `json:"contrasena" validate:"required"`
}

type LoginResponse struct {
	Token     string          `json:"token"`
	TokenType string          `json:"tokenType"`
	ExpiresIn int             `json:"expiresIn"`
	Usuario   UsuarioResponse `json:"usuario"`
}

// ─── Usuarios ────────────────────────────────────────────────────────────────

type CrearUsuarioRequest struct {
	Nombre     string `json:"nombre"     validate:"required"`
	Usuario    string `json:"usuario"    validate:"required,min=3"`
	Contrasena string `json:"contrasena" validate:"required,min=6"`
	Rol        string `json:"rol"        validate:"required,oneof=ADMINISTRADOR TRABAJADOR"`
}

type ActualizarUsuarioRequest struct {
	Nombre     string `json:"nombre"`
	Contrasena string `json:"contrasena" validate:"omitempty,min=6"`
	Rol        string `json:"rol"        validate:"omitempty,oneof=ADMINISTRADOR TRABAJADOR"`
	Activo     *bool  `json:"activo"`
}

type UsuarioResponse struct {
	ID      int64  `json:"idUsuario"`
	Nombre  string `json:"nombre"`
	Usuario string `json:"usuario"`
	Rol     string `json:"rol"`
	Activo  bool   `json:"activo"`
}
