package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearArregloRequest struct {
	NombreFlor   string          `json:"nombre_flor"   validate:"required,max=100"`
	TipoProducto string          `json:"tipo_producto" validate:"required,max=100"`
	Descripcion  string          `json:"descripcion"   validate:"max=500"`
	Precio       decimal.Decimal `json:"precio"        validate:"required"`
	ImagenURL    *string         `json:"imagen_url"    validate:"omitempty,max=255"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ArregloResponse struct {
	ID           string          `json:"id"`
	NombreFlor   string          `json:"nombre_flor"`
	TipoProducto string          `json:"tipo_producto"`
	Descripcion  string          `json:"descripcion,omitempty"`
	Precio       decimal.Decimal `json:"precio"`
	ImagenURL    *string         `json:"imagen_url,omitempty"`
}

// ArregloBusquedaItem feeds the sales-entry autocomplete
// (GET /v1/arreglos/buscar?q=).
type ArregloBusquedaItem struct {
	ID         string          `json:"id"`
	NombreFlor string          `json:"nombre_flor"`
	Precio     decimal.Decimal `json:"precio"`
}
