// Command seeduser crea (o reactiva) el usuario superadmin inicial.
// Uso: seeduser -username admin -password <clave> -documento 1000000
package main

import (
	"errors"
	"flag"
	"os"
	"time"

	"floristeria/internal/config"
	"floristeria/internal/infra"
	"floristeria/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	username := flag.String("username", "admin", "nombre de usuario")
	password := flag.String("password", "", "contraseña en claro (obligatoria)")
	documento := flag.String("documento", "1000000", "documento de identidad")
	nombre := flag.String("nombre", "Administrador", "nombre")
	flag.Parse()

	if *password == "" {
		log.Fatal().Msg("la bandera -password es obligatoria")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("error cargando configuracion")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("error conectando a PostgreSQL")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), 12)
	if err != nil {
		log.Fatal().Err(err).Msg("error generando hash bcrypt")
	}

	usuario := model.Usuario{
		Username:     *username,
		Documento:    *documento,
		Nombre:       *nombre,
		PasswordHash: string(hash),
		Rol:          "superadmin",
		Activo:       true,
	}

	// Upsert por username: si ya existe, renueva clave y reactiva.
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "username"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"password_hash": usuario.PasswordHash,
				"rol":           "superadmin",
				"activo":        true,
			}),
		}).Create(&usuario).Error; err != nil {
			return err
		}

		// En la rama de conflicto el ID no vuelve poblado
		if err := tx.Where("username = ?", usuario.Username).First(&usuario).Error; err != nil {
			return err
		}

		var perfil model.Perfil
		err := tx.Where("usuario_id = ?", usuario.ID).First(&perfil).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&model.Perfil{UsuarioID: usuario.ID}).Error
		}
		return err
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error sembrando superadmin")
	}

	log.Info().Str("username", *username).Msg("superadmin listo")
}
