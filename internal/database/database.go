package database

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pawhaven/shelter-backend/config"
	"github.com/pawhaven/shelter-backend/internal/models"
)

// New opens the postgres database, applies pool settings and migrates the
// schema.
func New(cfg *config.Config) (*gorm.DB, error) {
	log.Printf("Connecting to database at %s:%s as user %s", cfg.DBHost, cfg.DBPort, cfg.DBUser)

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Printf("Successfully connected to database")
	return db, nil
}

// Migrate creates or updates every table in the shelter schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Frequency{},
		&models.Location{},
		&models.Pet{},
		&models.Food{},
		&models.Medication{},
		&models.Vaccine{},
		&models.Injury{},
		&models.Check{},
		&models.PetFood{},
		&models.MedicationSchedule{},
		&models.VaccinationSchedule{},
		&models.ChecksSchedule{},
		&models.InjuryReport{},
		&models.PetAdoption{},
	)
}
