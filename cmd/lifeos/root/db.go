package root

import (
	"context"
	"database/sql"

	"github.com/RicGue02/LifeOS/internal/config"
	"github.com/RicGue02/LifeOS/internal/engine"
	"github.com/RicGue02/LifeOS/internal/logger"
	"github.com/RicGue02/LifeOS/internal/storage"
)

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(globalFlags.configFile)
	if err != nil {
		return config.Config{}, err
	}
	if globalFlags.dbPath != "" {
		cfg.DBPath = globalFlags.dbPath
	}
	if globalFlags.memory {
		cfg.DBPath = ":memory:"
	}
	return cfg, nil
}

func openDB(ctx context.Context, cfg config.Config) (*sql.DB, func(), error) {
	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(logger.Options{Mode: cfg.LogMode, File: cfg.LogFile})
	if err != nil {
		return nil, nil, err
	}
	db, closeDB, err := openDB(ctx, cfg)
	if err != nil {
		log.Sync()
		return nil, nil, err
	}
	log.Debug("database opened", "path", cfg.DBPath)

	svc := engine.NewService(ctx, db, engine.WithLogger(log), engine.WithLocation(loc))
	cleanup := func() {
		closeDB()
		log.Sync()
	}
	return svc, cleanup, nil
}
