// Seed de datos iniciales: usuario administrador y unidades/sectores de
// arranque. Idempotente: si el usuario o la unidad ya existen, los salta.
//
// Uso:
//
//	SEED_ADMIN_EMAIL=admin@example.com SEED_ADMIN_PASSWORD=secreto go run ./cmd/seed
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Almacen-api/pkg/config"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// Unidades y sectores de arranque.
var defaultUnits = map[string][]string{
	"Almacén Central": {"Recepción", "Despacho"},
	"Mantenimiento":   {"Taller", "Oficina"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal().Msg("SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD son obligatorios")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)

	existing, err := userRepo.GetByEmail(ctx, email)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar usuario admin")
	}
	if existing != nil {
		log.Info().Str("email", email).Msg("usuario admin ya existe, omitiendo")
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash de contraseña")
		}
		matricula := os.Getenv("SEED_ADMIN_MATRICULA")
		user := &entity.User{
			ID:           uuid.New().String(),
			Name:         "Administrador",
			Email:        email,
			PasswordHash: string(hash),
			Role:         "admin",
			CreatedAt:    time.Now(),
		}
		if matricula != "" {
			user.Matricula = &matricula
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatal().Err(err).Msg("crear usuario admin")
		}
		log.Info().Str("email", email).Msg("usuario admin creado")
	}

	for unitName, sectors := range defaultUnits {
		unit, err := unitRepo.GetUnitByName(ctx, unitName)
		if err != nil {
			log.Fatal().Err(err).Str("unit", unitName).Msg("consultar unidad")
		}
		if unit == nil {
			unit = &entity.Unit{
				ID:        uuid.New().String(),
				Name:      unitName,
				CreatedAt: time.Now(),
			}
			if err := unitRepo.CreateUnit(ctx, unit); err != nil {
				log.Fatal().Err(err).Str("unit", unitName).Msg("crear unidad")
			}
			log.Info().Str("unit", unitName).Msg("unidad creada")
		}
		for _, sectorName := range sectors {
			sector, err := unitRepo.GetSectorByName(ctx, unit.ID, sectorName)
			if err != nil {
				log.Fatal().Err(err).Str("sector", sectorName).Msg("consultar sector")
			}
			if sector != nil {
				continue
			}
			s := &entity.Sector{
				ID:        uuid.New().String(),
				UnitID:    unit.ID,
				Name:      sectorName,
				CreatedAt: time.Now(),
			}
			if err := unitRepo.CreateSector(ctx, s); err != nil {
				log.Fatal().Err(err).Str("sector", sectorName).Msg("crear sector")
			}
			log.Info().Str("unit", unitName).Str("sector", sectorName).Msg("sector creado")
		}
	}

	log.Info().Msg("seed completado")
}
