// Package db selects and opens the configured persistence backend.
package db

import (
	"context"
	"fmt"

	"github.com/layarlegenda59/kasirku/internal/config"
	"github.com/layarlegenda59/kasirku/internal/storage"
	"github.com/layarlegenda59/kasirku/internal/storage/postgres"
	redisstore "github.com/layarlegenda59/kasirku/internal/storage/redis"
	"github.com/layarlegenda59/kasirku/internal/storage/sqlite"
)

// Open returns the backend named by cfg.StorageDriver. The connection
// is opened once here and lives for the whole process.
func Open(ctx context.Context, cfg config.Config) (storage.Store, error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		return sqlite.Open(cfg.SQLitePath)
	case config.DriverPostgres:
		return postgres.Open(ctx, cfg.DatabaseURL)
	case config.DriverRedis:
		return redisstore.Open(ctx, cfg.RedisAddr)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
