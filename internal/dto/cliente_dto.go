package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearClienteRequest struct {
	Documento     string  `json:"documento"      validate:"required,max=20"`
	TipoDocumento string  `json:"tipo_documento" validate:"required,oneof=CC TI CE NIT PAS"`
	Nombre        string  `json:"nombre"         validate:"required,max=100"`
	Apellido      string  `json:"apellido"       validate:"required,max=100"`
	Telefono      *string `json:"telefono"       validate:"omitempty,max=20"`
	Correo        *string `json:"correo"         validate:"omitempty,email"`
	Direccion     *string `json:"direccion"      validate:"omitempty,max=255"`
	Ciudad        *string `json:"ciudad"         validate:"omitempty,max=100"`
	Departamento  *string `json:"departamento"   validate:"omitempty,max=45"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID            string  `json:"id"`
	Documento     string  `json:"documento"`
	TipoDocumento string  `json:"tipo_documento"`
	Nombre        string  `json:"nombre"`
	Apellido      string  `json:"apellido"`
	Telefono      *string `json:"telefono,omitempty"`
	Correo        *string `json:"correo,omitempty"`
	Direccion     *string `json:"direccion,omitempty"`
	Ciudad        *string `json:"ciudad,omitempty"`
	Departamento  *string `json:"departamento,omitempty"`
}

// ClienteBusquedaItem is the trimmed shape served to the sales-entry
// autocomplete (GET /v1/clientes/buscar?q=).
type ClienteBusquedaItem struct {
	ID        string  `json:"id"`
	Nombre    string  `json:"nombre"`
	Direccion *string `json:"direccion,omitempty"`
}
