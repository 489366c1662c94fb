package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Arreglo is a floral arrangement offered for sale.
type Arreglo struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NombreFlor   string          `gorm:"type:varchar(100);index;not null"`
	TipoProducto string          `gorm:"type:varchar(100);not null"`
	Descripcion  string          `gorm:"type:varchar(500)"`
	Precio       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ImagenURL    *string         `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Arreglo) TableName() string { return "arreglos" }
