package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	NombreUsuario string `json:"nombre_usuario" validate:"required,min=1"`
	Contrasena    string `json:"contrasena"     validate:"required,min=4"`
}

type CrearUsuarioRequest struct {
	NombreUsuario string  `json:"nombre_usuario" validate:"required,min=1,max=150"`
	Contrasena    string  `json:"contrasena"     validate:"required,min=6"`
	Cargo         string  `json:"cargo"          validate:"required,oneof=administrador cajero gerente visor"`
	Descripcion   *string `json:"descripcion"    validate:"omitempty,max=500"`
}

type ActualizarUsuarioRequest struct {
	NombreUsuario string  `json:"nombre_usuario" validate:"omitempty,min=1,max=150"`
	Contrasena    string  `json:"contrasena"     validate:"omitempty,min=6"`
	Cargo         string  `json:"cargo"          validate:"omitempty,oneof=administrador cajero gerente visor"`
	Descripcion   *string `json:"descripcion"    validate:"omitempty,max=500"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID            int64   `json:"id"`
	NombreUsuario string  `json:"nombre_usuario"`
	Cargo         string  `json:"cargo"`
	Descripcion   *string `json:"descripcion"`
	Activo        bool    `json:"activo"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int             `json:"expires_in"` // seconds
	User        UsuarioResponse `json:"user"`
}
