package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig(env(nil))

	require.NoError(t, err)
	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, StorageLevelDB, config.StorageDriver)
	assert.Empty(t, config.LevelDBPath)
	assert.Equal(t, 100, config.OutboxBatchSize)
	assert.Equal(t, "* * * * * *", config.OutboxRelaySchedule)
	assert.Equal(t, slog.LevelInfo, config.LogLevel)
	assert.Equal(t, "text", config.LogFormat)
}

func TestLoadConfig_Postgres(t *testing.T) {
	config, err := LoadConfig(env(map[string]string{
		"HTTP_PORT":         "9090",
		"STORAGE_DRIVER":    "Postgres",
		"DB_HOST":           "localhost",
		"DB_USER":           "registry",
		"DB_PASSWORD":       "secret",
		"DB_NAME":           "contracts",
		"OUTBOX_BATCH_SIZE": "20",
		"LOG_LEVEL":         "debug",
		"LOG_FORMAT":        "JSON",
	}))

	require.NoError(t, err)
	assert.Equal(t, "9090", config.HTTPPort)
	assert.Equal(t, StoragePostgres, config.StorageDriver)
	assert.Equal(t, 20, config.OutboxBatchSize)
	assert.Equal(t, slog.LevelDebug, config.LogLevel)
	assert.Equal(t, "json", config.LogFormat)
	assert.Equal(t, "host=localhost port=5432 user=registry password=secret dbname=contracts sslmode=disable", config.DSN())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
	}{
		{"unknown driver", map[string]string{"STORAGE_DRIVER": "sqlite"}},
		{"postgres without host", map[string]string{"STORAGE_DRIVER": "postgres", "DB_USER": "u", "DB_NAME": "n"}},
		{"zero batch size", map[string]string{"OUTBOX_BATCH_SIZE": "0"}},
		{"non numeric batch size", map[string]string{"OUTBOX_BATCH_SIZE": "many"}},
		{"unknown log level", map[string]string{"LOG_LEVEL": "verbose"}},
		{"unknown log format", map[string]string{"LOG_FORMAT": "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(env(tt.values))
			assert.Error(t, err)
		})
	}
}
