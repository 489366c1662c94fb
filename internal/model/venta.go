package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"floristeria/internal/pedido"
)

// TipoVenta: "BP" (bajo pedido) | "EI" (entrega inmediata).
// FormaPago for ventas additionally accepts the mobile wallets
// "nequi" and "daviplata" on top of the shared set.
type Venta struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID    uuid.UUID `gorm:"type:uuid;index;not null"`
	TipoVenta    string    `gorm:"type:varchar(2);not null"`
	FormaPago    string    `gorm:"type:varchar(20);not null"`
	MedioPago    string    `gorm:"type:varchar(20);not null"`
	FechaEmision time.Time `gorm:"type:date;not null"`
	Descripcion  string

	ConDomicilio bool            `gorm:"not null;default:false"`
	Direccion    *string         `gorm:"type:varchar(200)"`
	PrecioEnvio  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	ManoObra     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`

	// IvaPct comes from the closed set {0, 5, 19}.
	IvaPct   decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Subtotal decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	IvaTotal decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Total    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Cliente  *Cliente       `gorm:"foreignKey:ClienteID"`
	Detalles []DetalleVenta `gorm:"foreignKey:VentaID;constraint:OnDelete:CASCADE"`
}

func (Venta) TableName() string { return "ventas" }

// DetalleVenta is one sold arrangement line, owned by its venta.
type DetalleVenta struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID        uuid.UUID       `gorm:"type:uuid;index;not null"`
	ArregloID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Cantidad       int             `gorm:"not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Arreglo *Arreglo `gorm:"foreignKey:ArregloID"`
}

func (DetalleVenta) TableName() string { return "detalles_venta" }

// RecalcularTotales derives Subtotal, IvaTotal and Total with the tax
// policy: mano de obra always enters the taxable base, envio only when
// ConDomicilio is set, IVA on top of everything.
func (v *Venta) RecalcularTotales() {
	suma := decimal.Zero
	for _, det := range v.Detalles {
		suma = suma.Add(det.PrecioUnitario.Mul(decimal.NewFromInt(int64(det.Cantidad))))
	}
	tot := pedido.PoliticaImpuesto{
		Porcentaje:   v.IvaPct,
		ManoObra:     v.ManoObra,
		ConDomicilio: v.ConDomicilio,
		PrecioEnvio:  v.PrecioEnvio,
	}.Calcular(suma)
	v.Subtotal = tot.Subtotal
	v.IvaTotal = tot.Ajuste
	v.Total = tot.Total
}
