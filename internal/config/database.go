package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"transit_companion/internal/models"
)

// OpenDB connects to PostgreSQL and migrates the schema. The returned
// handle is injected into each service at construction.
func OpenDB(cfg DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode, cfg.TimeZone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("auto-migration: %w", err)
	}
	return db, nil
}

// Migrate creates or updates every table. Shared with the test setup,
// which runs it against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Route{},
		&models.Stop{},
		&models.Bus{},
		&models.Schedule{},
		&models.BusStop{},
		&models.Favorite{},
		&models.Trip{},
		&models.UserStats{},
		&models.Notification{},
	)
}
