package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"floristeria/internal/pedido"
)

// Forma y medio de pago for compras — closed sets.
const (
	PagoEfectivo      = "efectivo"
	PagoTransferencia = "transferencia"
	PagoTarjeta       = "tarjeta"
)

// Compra is a purchase order header. Its three derived fields (Subtotal,
// DescuentoTotal, Total) are always a pure function of the detalles plus
// DescuentoPct; they are never written independently once the compra has
// at least one detalle.
type Compra struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProveedorID      uuid.UUID `gorm:"type:uuid;index;not null"`
	FormaPago        string    `gorm:"type:varchar(20);not null"`
	MedioPago        string    `gorm:"type:varchar(20);not null"`
	FechaEmision     time.Time `gorm:"type:date;not null"`
	FechaVencimiento *time.Time `gorm:"type:date"`
	Descripcion      string
	Departamento     string `gorm:"type:varchar(45)"`
	Ciudad           string `gorm:"type:varchar(45)"`

	DescuentoPct   decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	DescuentoTotal decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Total          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Proveedor *Proveedor      `gorm:"foreignKey:ProveedorID"`
	Detalles  []DetalleCompra `gorm:"foreignKey:CompraID;constraint:OnDelete:CASCADE"`
}

func (Compra) TableName() string { return "compras" }

// DetalleCompra is one purchased product line. Subtotal is set when the
// detalle is built from a parsed row and equals PrecioUnitario × Cantidad
// exactly. Detalles are replaced wholesale on edit, never diffed.
type DetalleCompra struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompraID       uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Cantidad       int             `gorm:"not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetalleCompra) TableName() string { return "detalles_compra" }

// RecalcularTotales derives Subtotal, DescuentoTotal and Total from the
// current detalles with the discount policy. It reads the detalles without
// mutating them. Zero detalles yields all zeros.
func (c *Compra) RecalcularTotales() {
	suma := decimal.Zero
	for _, det := range c.Detalles {
		suma = suma.Add(det.PrecioUnitario.Mul(decimal.NewFromInt(int64(det.Cantidad))))
	}
	tot := pedido.PoliticaDescuento{Porcentaje: c.DescuentoPct}.Calcular(suma)
	c.Subtotal = tot.Subtotal
	c.DescuentoTotal = tot.Ajuste
	c.Total = tot.Total
}
