package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoriasProducto is the closed set of catalog categories.
var CategoriasProducto = []string{
	"arreglos",
	"ocasiones",
	"condolencias",
	"tipo",
	"plantas",
	"detalles",
	"eventos",
}

// Producto is a catalog item purchasable from suppliers.
// ImagenURL holds a path/URL; file storage is outside this service.
type Producto struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string          `gorm:"type:varchar(150);index;not null"`
	Categoria   string          `gorm:"type:varchar(50);not null"`
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Tamano      string          `gorm:"type:varchar(20)"`
	Descripcion *string
	ImagenURL   *string `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Producto) TableName() string { return "productos" }
