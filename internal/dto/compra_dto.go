package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearCompraRequest carries the purchase header fields plus the three
// parallel arrays submitted by the multi-row detail form. The arrays are
// index-aligned: row i = (referencias[i], precios[i], cantidades[i]).
// Prices arrive as strings because the form accepts es-CO formatting
// ("1.234,50"); normalization happens in the parser, not here.
type CrearCompraRequest struct {
	ProveedorID      string          `json:"proveedor_id"      validate:"required,uuid"`
	FormaPago        string          `json:"forma_pago"        validate:"required,oneof=efectivo transferencia tarjeta"`
	MedioPago        string          `json:"medio_pago"        validate:"required,oneof=efectivo transferencia tarjeta"`
	FechaEmision     string          `json:"fecha_emision"     validate:"required,datetime=2006-01-02"`
	FechaVencimiento *string         `json:"fecha_vencimiento" validate:"omitempty,datetime=2006-01-02"`
	Descripcion      string          `json:"descripcion"       validate:"max=500"`
	Departamento     string          `json:"departamento"      validate:"max=45"`
	Ciudad           string          `json:"ciudad"            validate:"max=45"`
	DescuentoPct     decimal.Decimal `json:"descuento_pct"`

	Referencias []string `json:"referencias"`
	Precios     []string `json:"precios"`
	Cantidades  []string `json:"cantidades"`
}

// CompraFilter is bound from the query string of GET /v1/compras.
type CompraFilter struct {
	ProveedorID string `form:"proveedor_id"`
	Fecha       string `form:"fecha"` // YYYY-MM-DD; empty = all
	Page        int    `form:"page,default=1"   validate:"min=1"`
	Limit       int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleCompraResponse struct {
	ProductoID     string          `json:"producto_id"`
	Producto       string          `json:"producto"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Cantidad       int             `json:"cantidad"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type CompraResponse struct {
	ID               string                  `json:"id"`
	ProveedorID      string                  `json:"proveedor_id"`
	Proveedor        string                  `json:"proveedor"`
	FormaPago        string                  `json:"forma_pago"`
	MedioPago        string                  `json:"medio_pago"`
	FechaEmision     string                  `json:"fecha_emision"`
	FechaVencimiento *string                 `json:"fecha_vencimiento,omitempty"`
	Descripcion      string                  `json:"descripcion"`
	Departamento     string                  `json:"departamento,omitempty"`
	Ciudad           string                  `json:"ciudad,omitempty"`
	DescuentoPct     decimal.Decimal         `json:"descuento_pct"`
	Subtotal         decimal.Decimal         `json:"subtotal"`
	DescuentoTotal   decimal.Decimal         `json:"descuento_total"`
	Total            decimal.Decimal         `json:"total"`
	Detalles         []DetalleCompraResponse `json:"detalles"`
	CreatedAt        string                  `json:"created_at"`
}

type CompraListResponse struct {
	Data  []CompraResponse `json:"data"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}
