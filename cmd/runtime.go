package cmd

import (
	"fmt"

	"roll-checker/core/config"
	"roll-checker/core/database"
	"roll-checker/core/logger"
	"roll-checker/core/storage"
	"roll-checker/feature/audit"
	"roll-checker/feature/history"
	"roll-checker/feature/integrity"
	"roll-checker/feature/settings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime is the set of collaborators a command works with.
// store and db are nil when their section is disabled.
type runtime struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    storage.Client
	db       *gorm.DB
	settings *settings.Store
}

// newRuntime loads configuration and connects the optional backends.
// A failing optional backend is logged and left disabled.
func newRuntime() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	rt := &runtime{
		cfg:      cfg,
		logger:   logg,
		settings: settings.NewStore(cfg.Settings.Path),
	}

	if cfg.Storage.Enabled {
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Warn("Storage client unavailable", zap.Error(err))
		} else {
			rt.store = store
		}
	}

	if cfg.Database.Enabled {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			rt.db = db
			logg.Debug("Connected to history database", zap.String("driver", cfg.Database.Driver))
		}
	}

	return rt, nil
}

// historyRepo returns the history repository, migrating its table. Nil without a database.
func (rt *runtime) historyRepo() *history.Repository {
	if rt.db == nil {
		return nil
	}
	repo := history.NewRepository(rt.db)
	if err := repo.Migrate(); err != nil {
		rt.logger.Warn("History disabled, migration failed", zap.Error(err))
		return nil
	}
	return repo
}

// auditService builds the audit service. Saved settings are applied over the
// configured defaults on every run.
func (rt *runtime) auditService(repo *history.Repository) *audit.Service {
	svc := audit.NewService(rt.store, rt.cfg.Storage.Bucket, rt.cfg.Audit, rt.cfg.Remote, rt.logger)
	svc.UseSettings(rt.settings)
	if repo != nil {
		svc.SetRecorder(repo)
	}
	return svc
}

// integrityService builds the integrity service over the configured backends.
func (rt *runtime) integrityService() *integrity.Service {
	return integrity.NewService(rt.store, rt.cfg.Storage.Bucket, []string{rt.cfg.Audit.ReportPrefix}, rt.db, rt.logger)
}

func (rt *runtime) close() {
	if rt.db != nil {
		if sqlDB, err := rt.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = rt.logger.Sync()
}
