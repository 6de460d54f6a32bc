package cmd

import (
	"fmt"

	"device-sync/core/config"
	"device-sync/core/database"
	"device-sync/core/logger"
	"device-sync/core/metrics"
	"device-sync/core/storage"
	"device-sync/feature/devicesync"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// deps holds the dependencies shared by the commands.
type deps struct {
	cfg   *config.Config
	log   *zap.Logger
	db    *gorm.DB
	store storage.Client
}

// bootstrap loads the configuration and connects the logger, database and,
// when report archiving is enabled, the object storage.
func bootstrap() (*deps, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	l.Info("Connected to inventory database",
		zap.String("driver", cfg.Database.Driver),
		zap.String("name", cfg.Database.Name))

	rt := &deps{cfg: cfg, log: l, db: db}
	if cfg.Sync.ArchiveReports {
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		rt.store = store
	}
	return rt, nil
}

// service builds the synchronization service. m may be nil.
func (rt *deps) service(m *metrics.Metrics) *devicesync.Service {
	var archive *devicesync.Archive
	if rt.store != nil {
		archive = devicesync.NewArchive(rt.store, rt.cfg.Storage.Bucket, rt.cfg.Sync.ReportPrefix)
	}
	return devicesync.NewService(rt.db, rt.log, m, archive, rt.cfg.Sync)
}

// close flushes the logger and closes the database.
func (rt *deps) close() {
	if sqlDB, err := rt.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = rt.log.Sync()
}
