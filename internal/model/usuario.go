package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario stores system users with role-based access.
// Rol: "superadmin" | "staff" | "usuario"
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Documento    string    `gorm:"type:varchar(10);uniqueIndex;not null"`
	Nombre       string    `gorm:"type:varchar(150);not null"`
	Apellido     string    `gorm:"type:varchar(150)"`
	Email        *string   `gorm:"type:varchar(100);uniqueIndex"`
	PasswordHash string    `gorm:"not null"`
	Rol          string    `gorm:"type:varchar(20);not null"`
	Activo       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Perfil *Perfil `gorm:"foreignKey:UsuarioID"`
}

func (Usuario) TableName() string { return "usuarios" }

// Perfil holds the optional personal data of a user. It is created
// explicitly by the service in the same transaction as its Usuario —
// there is no implicit on-save hook.
type Perfil struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID       uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null"`
	Telefono        *string    `gorm:"type:varchar(20)"`
	Direccion       *string    `gorm:"type:varchar(255)"`
	FechaNacimiento *time.Time `gorm:"type:date"`
	FotoURL         *string    `gorm:"type:varchar(255)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Perfil) TableName() string { return "perfiles" }
