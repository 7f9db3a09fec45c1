// Package driver selects a storage.Backend from configuration.
package driver

import (
	"errors"
	"fmt"

	"github.com/minglemoody/internal/config"
	"github.com/minglemoody/internal/storage"
	"github.com/minglemoody/internal/storage/memstore"
	"github.com/minglemoody/internal/storage/redisstore"
	"github.com/minglemoody/internal/storage/sqlstore"
	"gorm.io/gorm"
)

// Open returns the backend named by cfg.StorageDriver. The sqlite driver
// shares gdb with the rest of the application.
func Open(cfg config.AppConfig, gdb *gorm.DB) (storage.Backend, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverSQLite, "":
		if gdb == nil {
			return nil, errors.New("sqlite storage requires an open database")
		}
		return sqlstore.New(gdb), nil
	case config.StorageDriverRedis:
		store, err := redisstore.New(redisstore.Options{
			Address:  cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return store, nil
	case config.StorageDriverMemory:
		return memstore.New(), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}
