package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"supplychain/cmd"
	"supplychain/internal/adapters/out/leveldb"
	"supplychain/internal/adapters/out/postgres/contractrepo"
	"supplychain/internal/adapters/out/postgres/outboxrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := newLogger(configs)

	app, closeStorage := newCompositionRoot(configs, logger)
	defer closeStorage()

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Error creating jobs: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	// Variables already set in the environment take precedence over .env.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}

func newLogger(config cmd.Config) *slog.Logger {
	options := &slog.HandlerOptions{Level: config.LogLevel}

	var handler slog.Handler = slog.NewTextHandler(os.Stdout, options)
	if config.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, options)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func newCompositionRoot(config cmd.Config, logger *slog.Logger) (*cmd.CompositionRoot, func()) {
	switch config.StorageDriver {
	case cmd.StoragePostgres:
		db, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{})
		if err != nil {
			log.Fatalf("Error connecting to postgres: %v", err)
		}
		if err = db.AutoMigrate(&contractrepo.ContractDTO{}, &contractrepo.LineItemDTO{}, &outboxrepo.MessageDTO{}); err != nil {
			log.Fatalf("Error migrating postgres schema: %v", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatalf("Error getting postgres connection pool: %v", err)
		}

		logger.Info("Storage ready", "driver", config.StorageDriver, "host", config.DBHost, "database", config.DBName)
		return cmd.NewPostgresCompositionRoot(config, db, logger), func() { _ = sqlDB.Close() }
	default:
		store, err := leveldb.Open(config.LevelDBPath)
		if err != nil {
			log.Fatalf("Error opening leveldb store: %v", err)
		}

		location := config.LevelDBPath
		if location == "" {
			location = "memory"
		}
		logger.Info("Storage ready", "driver", config.StorageDriver, "path", location)
		return cmd.NewLevelDBCompositionRoot(config, store, logger), func() { _ = store.Close() }
	}
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("Error creating router: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server started", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped")
}
