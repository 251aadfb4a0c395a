package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/barstock/backend/config"
	"github.com/barstock/backend/internal/model"
)

// New opens the postgres connection and migrates the schema. When no
// database is configured it returns nil; the recipe cache and custom
// recipes are simply disabled.
func New(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	dsn := cfg.DatabaseDSN()
	if dsn == "" {
		logger.Info("no database configured, recipe cache disabled")
		return nil, nil
	}

	logger.Info("connecting to database",
		zap.String("host", cfg.DBHost),
		zap.String("port", cfg.DBPort),
		zap.String("database", cfg.DBName))

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("error migrating schema: %w", err)
	}

	logger.Info("database ready")
	return db, nil
}

// Migrate creates or updates the recipe tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Cocktail{},
		&model.CustomRecipe{},
	)
}
