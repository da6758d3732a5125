package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"supplychain/internal/jobs"
)

// Storage drivers.
const (
	StorageLevelDB  = "leveldb"
	StoragePostgres = "postgres"
)

const defaultOutboxBatchSize = 100

type Config struct {
	HTTPPort            string
	StorageDriver       string
	LevelDBPath         string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	OutboxBatchSize     int
	OutboxRelaySchedule string
	LogLevel            slog.Level
	LogFormat           string
}

// LoadConfig reads the configuration through getenv, usually os.Getenv
// after the .env file has been loaded.
func LoadConfig(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:            valueOr(getenv("HTTP_PORT"), "8080"),
		StorageDriver:       strings.ToLower(valueOr(getenv("STORAGE_DRIVER"), StorageLevelDB)),
		LevelDBPath:         getenv("LEVELDB_PATH"),
		DBHost:              getenv("DB_HOST"),
		DBPort:              valueOr(getenv("DB_PORT"), "5432"),
		DBUser:              getenv("DB_USER"),
		DBPassword:          getenv("DB_PASSWORD"),
		DBName:              getenv("DB_NAME"),
		DBSslMode:           valueOr(getenv("DB_SSLMODE"), "disable"),
		OutboxBatchSize:     defaultOutboxBatchSize,
		OutboxRelaySchedule: valueOr(getenv("OUTBOX_RELAY_SCHEDULE"), jobs.DefaultOutboxRelaySchedule),
		LogFormat:           strings.ToLower(valueOr(getenv("LOG_FORMAT"), "text")),
	}

	var errs []error

	if v := getenv("OUTBOX_BATCH_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size <= 0 {
			errs = append(errs, fmt.Errorf("OUTBOX_BATCH_SIZE must be a positive integer, got %q", v))
		} else {
			config.OutboxBatchSize = size
		}
	}

	if v := getenv("LOG_LEVEL"); v != "" {
		if err := config.LogLevel.UnmarshalText([]byte(v)); err != nil {
			errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
		}
	}

	switch config.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be text or json, got %q", config.LogFormat))
	}

	switch config.StorageDriver {
	case StorageLevelDB:
	case StoragePostgres:
		if config.DBHost == "" || config.DBUser == "" || config.DBName == "" {
			errs = append(errs, errors.New("DB_HOST, DB_USER and DB_NAME are required for the postgres storage driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER must be %s or %s, got %q", StorageLevelDB, StoragePostgres, config.StorageDriver))
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return config, nil
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
