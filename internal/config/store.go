package config

import (
	"context"
	"fmt"

	"technomaster/internal/kv"

	"go.uber.org/zap"
)

// OpenStore opens the kv backend selected by cfg.StoreDriver
func OpenStore(ctx context.Context, cfg *Config, logger *zap.Logger) (kv.Store, error) {
	switch cfg.StoreDriver {
	case DriverMemory:
		logger.Warn("using in-memory store; data is lost on exit")
		return kv.NewMemoryStore(), nil
	case DriverSQLite:
		store, err := kv.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.Info("using sqlite store", zap.String("path", cfg.SQLitePath))
		return store, nil
	case DriverPostgres:
		dbCfg, err := LoadDBConfig()
		if err != nil {
			return nil, err
		}
		pool, err := ConnectDB(ctx, dbCfg, logger)
		if err != nil {
			return nil, err
		}
		if err := AutoMigrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, err
		}
		return kv.NewPostgresStore(pool), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
