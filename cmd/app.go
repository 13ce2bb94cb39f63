package cmd

import (
	"errors"
	"fmt"

	"imgbase/core/config"
	"imgbase/core/database"
	"imgbase/core/logger"
	"imgbase/core/storage"
	"imgbase/feature/activity"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// configPath is where .env and config.yaml are looked up.
var configPath = "."

// app bundles what every command needs.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	store  storage.Client
	db     *gorm.DB
}

// bootstrap loads the configuration and creates the logger and storage client.
// The database is optional: a connection failure is logged and db stays nil.
func bootstrap() (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := storage.NewClient(cfg.Storage, logg)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	a := &app{cfg: cfg, logger: logg, store: store}
	if conn, err := database.Connect(cfg.Database); err != nil {
		if !errors.Is(err, database.ErrDisabled) {
			logg.Warn("Optional database connection failed", zap.Error(err))
		}
	} else {
		a.db = conn
		logg.Info("Connected to activity database", zap.String("driver", cfg.Database.Driver))
	}
	return a, nil
}

// recorder returns the activity recorder, migrating its table first.
func (a *app) recorder() activity.Recorder {
	if a.db == nil {
		return activity.NopRecorder{}
	}
	repo := activity.NewRepository(a.db, a.logger)
	if err := repo.Migrate(); err != nil {
		a.logger.Warn("Activity log unavailable", zap.Error(err))
		return activity.NopRecorder{}
	}
	return repo
}

func (a *app) close() {
	_ = a.logger.Sync()
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
