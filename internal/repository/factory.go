package repository

import (
	"fmt"

	"github.com/xhamera1/Hotel-app/internal/config"
	"github.com/xhamera1/Hotel-app/internal/repository/file"
	"github.com/xhamera1/Hotel-app/internal/repository/memory"
	"github.com/xhamera1/Hotel-app/internal/repository/redis"
	"go.uber.org/zap"
)

// NewRepository creates the storage backend selected by cfg.Storage
func NewRepository(cfg config.Config, logger *zap.Logger) (Repository, error) {
	switch cfg.Storage {
	case config.StorageFile:
		logger.Info("Using file snapshot storage", zap.String("path", cfg.SnapshotPath))
		return file.NewRepository(cfg.SnapshotPath, logger), nil

	case config.StorageMemory:
		logger.Info("Using in-memory snapshot storage")
		return memory.NewRepository(), nil

	case config.StorageRedis:
		repo, err := redis.NewRepository(cfg.Redis, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using Redis snapshot storage", zap.String("key_prefix", cfg.Redis.KeyPrefix))
		return repo, nil
	}

	return nil, fmt.Errorf("%w: %q", config.ErrInvalidStorage, cfg.Storage)
}
