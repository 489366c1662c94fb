package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearVentaRequest carries the sale header plus the parallel detail arrays
// (same convention as CrearCompraRequest, referencing arreglos instead of
// catalog products). IvaPct must belong to the closed set {0, 5, 19};
// that check produces a field error in the service rather than a binding
// failure, so it can be reported alongside row errors.
type CrearVentaRequest struct {
	ClienteID    string          `json:"cliente_id"    validate:"required,uuid"`
	TipoVenta    string          `json:"tipo_venta"    validate:"required,oneof=BP EI"`
	FormaPago    string          `json:"forma_pago"    validate:"required,oneof=efectivo tarjeta transferencia nequi daviplata"`
	MedioPago    string          `json:"medio_pago"    validate:"required,oneof=efectivo transferencia tarjeta"`
	Descripcion  string          `json:"descripcion"   validate:"max=500"`
	ConDomicilio bool            `json:"con_domicilio"`
	Direccion    *string         `json:"direccion"     validate:"omitempty,max=200"`
	PrecioEnvio  decimal.Decimal `json:"precio_envio"`
	ManoObra     decimal.Decimal `json:"mano_obra"`
	IvaPct       decimal.Decimal `json:"iva_pct"`

	Referencias []string `json:"referencias"`
	Precios     []string `json:"precios"`
	Cantidades  []string `json:"cantidades"`
}

// VentaFilter is bound from the query string of GET /v1/ventas.
type VentaFilter struct {
	ClienteID string `form:"cliente_id"`
	Fecha     string `form:"fecha"` // YYYY-MM-DD; empty = all
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleVentaResponse struct {
	ArregloID      string          `json:"arreglo_id"`
	Arreglo        string          `json:"arreglo"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Cantidad       int             `json:"cantidad"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type VentaResponse struct {
	ID           string                 `json:"id"`
	ClienteID    string                 `json:"cliente_id"`
	Cliente      string                 `json:"cliente"`
	TipoVenta    string                 `json:"tipo_venta"`
	FormaPago    string                 `json:"forma_pago"`
	MedioPago    string                 `json:"medio_pago"`
	FechaEmision string                 `json:"fecha_emision"`
	Descripcion  string                 `json:"descripcion"`
	ConDomicilio bool                   `json:"con_domicilio"`
	Direccion    *string                `json:"direccion,omitempty"`
	PrecioEnvio  decimal.Decimal        `json:"precio_envio"`
	ManoObra     decimal.Decimal        `json:"mano_obra"`
	IvaPct       decimal.Decimal        `json:"iva_pct"`
	Subtotal     decimal.Decimal        `json:"subtotal"`
	IvaTotal     decimal.Decimal        `json:"iva_total"`
	Total        decimal.Decimal        `json:"total"`
	Detalles     []DetalleVentaResponse `json:"detalles"`
	CreatedAt    string                 `json:"created_at"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
