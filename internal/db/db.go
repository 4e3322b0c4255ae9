// Package db opens the gorm connection and migrates the schema.
package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/KittyCore/portfolio/internal/config"
	"github.com/KittyCore/portfolio/internal/db/dsn"
	"github.com/KittyCore/portfolio/internal/db/models"
)

// Dialector returns the gorm driver of the configured engine.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DB.GormEngine {
	case config.EnginePostgres:
		return postgres.Open(dsn.Create(cfg)), nil
	case config.EngineMySQL:
		return mysql.Open(dsn.Create(cfg)), nil
	case config.EngineSQLite:
		return sqlite.Open(dsn.Create(cfg)), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownGormEngine, cfg.DB.GormEngine)
	}
}

// Open connects to the configured database and migrates all tables.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}
	if cfg.DevMode {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}

	log.Info().Str("engine", cfg.DB.GormEngine).Msg("database ready")

	return db, nil
}

// Migrate creates or updates the tables of all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}
