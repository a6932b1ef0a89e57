package infra

import (
	"fmt"

	"magictravel/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// over the full model set. Decimal columns get their precision from the model
// tags, so AutoMigrate is sufficient here.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

// RunMigrations creates or updates all tables. Shared with integration tests.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Estado{},
		&model.Agencia{},
		&model.Usuario{},
		&model.Vehiculo{},
		&model.Ruta{},
		&model.Tour{},
		&model.RutaActivada{},
		&model.TourActivado{},
		&model.Servicio{},
		&model.Reserva{},
		&model.Caja{},
		&model.Egreso{},
		&model.Bitacora{},
	)
}
