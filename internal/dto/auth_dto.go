package dto

// ─── Auth ────────────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"`
	User         UsuarioResponse `json:"user"`
}

// ─── Usuarios ────────────────────────────────────────────────────────────────

type PerfilInput struct {
	Telefono        *string `json:"telefono"         validate:"omitempty,max=20"`
	Direccion       *string `json:"direccion"        validate:"omitempty,max=255"`
	FechaNacimiento *string `json:"fecha_nacimiento" validate:"omitempty,datetime=2006-01-02"`
	FotoURL         *string `json:"foto_url"         validate:"omitempty,max=255"`
}

type CrearUsuarioRequest struct {
	Username  string      `json:"username"  validate:"required,min=3,max=150"`
	Documento string      `json:"documento" validate:"required,len=10,numeric"`
	Nombre    string      `json:"nombre"    validate:"required,max=150"`
	Apellido  string      `json:"apellido"  validate:"max=150"`
	Email     *string     `json:"email"     validate:"omitempty,email"`
	Password  string      `json:"password"  validate:"required,min=8"`
	Rol       string      `json:"rol"       validate:"required,oneof=superadmin staff usuario"`
	Perfil    PerfilInput `json:"perfil"`
}

type ActualizarUsuarioRequest struct {
	Nombre   string       `json:"nombre"   validate:"omitempty,max=150"`
	Apellido string       `json:"apellido" validate:"omitempty,max=150"`
	Email    *string      `json:"email"    validate:"omitempty,email"`
	Password string       `json:"password" validate:"omitempty,min=8"`
	Rol      string       `json:"rol"      validate:"omitempty,oneof=superadmin staff usuario"`
	Perfil   *PerfilInput `json:"perfil"`
}

type PerfilResponse struct {
	Telefono        *string `json:"telefono,omitempty"`
	Direccion       *string `json:"direccion,omitempty"`
	FechaNacimiento *string `json:"fecha_nacimiento,omitempty"`
	FotoURL         *string `json:"foto_url,omitempty"`
}

type UsuarioResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Documento string          `json:"documento"`
	Nombre    string          `json:"nombre"`
	Apellido  string          `json:"apellido,omitempty"`
	Email     *string         `json:"email,omitempty"`
	Rol       string          `json:"rol"`
	Activo    bool            `json:"activo"`
	Perfil    *PerfilResponse `json:"perfil,omitempty"`
}
