package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente represents a flower-shop customer.
// TipoDocumento: "CC" | "TI" | "CE" | "NIT" | "PAS"
type Cliente struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Documento     string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	TipoDocumento string    `gorm:"type:varchar(10);not null"`
	Nombre        string    `gorm:"type:varchar(100);index;not null"`
	Apellido      string    `gorm:"type:varchar(100);not null"`
	Telefono      *string   `gorm:"type:varchar(20)"`
	Correo        *string   `gorm:"type:varchar(100)"`
	Direccion     *string   `gorm:"type:varchar(255)"`
	Ciudad        *string   `gorm:"type:varchar(100)"`
	Departamento  *string   `gorm:"type:varchar(45)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Cliente) TableName() string { return "clientes" }
