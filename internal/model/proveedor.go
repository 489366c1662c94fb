package model

import (
	"time"

	"github.com/google/uuid"
)

// Proveedor represents a supplier with commercial data.
// TipoDocumento: "CC" | "NIT" | "CE"
type Proveedor struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TipoDocumento   string    `gorm:"type:varchar(5);not null"`
	NumeroDocumento string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Nombre          string    `gorm:"type:varchar(150);not null"`
	Direccion       string    `gorm:"type:varchar(200)"`
	Telefono        string    `gorm:"type:varchar(20)"`
	Correo          string    `gorm:"type:varchar(100)"`
	Ciudad          string    `gorm:"type:varchar(100)"`
	Activo          bool      `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Compras []Compra `gorm:"foreignKey:ProveedorID"`
}

func (Proveedor) TableName() string { return "proveedores" }
