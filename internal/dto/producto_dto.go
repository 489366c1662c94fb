package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre      string          `json:"nombre"      validate:"required,max=150"`
	Categoria   string          `json:"categoria"   validate:"required,oneof=arreglos ocasiones condolencias tipo plantas detalles eventos"`
	Precio      decimal.Decimal `json:"precio"      validate:"required"`
	Tamano      string          `json:"tamano"      validate:"max=20"`
	Descripcion *string         `json:"descripcion"`
	ImagenURL   *string         `json:"imagen_url"  validate:"omitempty,max=255"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Categoria   string          `json:"categoria"`
	Precio      decimal.Decimal `json:"precio"`
	Tamano      string          `json:"tamano,omitempty"`
	Descripcion *string         `json:"descripcion,omitempty"`
	ImagenURL   *string         `json:"imagen_url,omitempty"`
}

// ProductoBusquedaItem feeds the purchase-entry autocomplete
// (GET /v1/productos/buscar?q=). Results are cached in Redis.
type ProductoBusquedaItem struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Precio      decimal.Decimal `json:"precio"`
	Descripcion *string         `json:"descripcion,omitempty"`
	ImagenURL   *string         `json:"imagen_url,omitempty"`
}
