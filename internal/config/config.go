package config

import (
	"log"
	"os"
)

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Config is the explicit runtime configuration. All environment
// inspection happens in Load; nothing downstream reads env vars.
type Config struct {
	Port          string
	StorageDriver string
	DatabaseURL   string
	SQLitePath    string
	RedisAddr     string
}

func Load() Config {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		StorageDriver: os.Getenv("STORAGE_DRIVER"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SQLitePath:    getEnv("SQLITE_PATH", "kasirku.db"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
	}

	// Historical default: postgres when a database URL is present,
	// the embedded file database otherwise.
	if cfg.StorageDriver == "" {
		if cfg.DatabaseURL != "" {
			cfg.StorageDriver = DriverPostgres
		} else {
			cfg.StorageDriver = DriverSQLite
		}
	}

	switch cfg.StorageDriver {
	case DriverSQLite, DriverRedis:
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			log.Fatal("DATABASE_URL is required for the postgres driver")
		}
	default:
		log.Fatalf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	return cfg
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
