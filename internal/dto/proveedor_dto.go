package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProveedorRequest struct {
	TipoDocumento   string `json:"tipo_documento"   validate:"required,oneof=CC NIT CE"`
	NumeroDocumento string `json:"numero_documento" validate:"required,max=50"`
	Nombre          string `json:"nombre"           validate:"required,min=2,max=150"`
	Direccion       string `json:"direccion"        validate:"max=200"`
	Telefono        string `json:"telefono"         validate:"max=20"`
	Correo          string `json:"correo"           validate:"omitempty,email"`
	Ciudad          string `json:"ciudad"           validate:"max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProveedorResponse struct {
	ID              string `json:"id"`
	TipoDocumento   string `json:"tipo_documento"`
	NumeroDocumento string `json:"numero_documento"`
	Nombre          string `json:"nombre"`
	Direccion       string `json:"direccion,omitempty"`
	Telefono        string `json:"telefono,omitempty"`
	Correo          string `json:"correo,omitempty"`
	Ciudad          string `json:"ciudad,omitempty"`
	Activo          bool   `json:"activo"`
}
