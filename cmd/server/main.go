package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"shahabsang/internal/api"
	"shahabsang/internal/config"
	"shahabsang/internal/db"
	"shahabsang/internal/store"
	"shahabsang/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Environment)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	database := openDatabase(cfg, logger)
	defer database.Close()

	// Combine: API routes take priority, the frontend handles the rest.
	mux := http.NewServeMux()
	mux.Handle("/api/", api.NewRouter(database, logger))
	mux.Handle("/", web.NewRouter(cfg.ImagesDir, logger))

	handler := api.RequestLogger(logger)(api.CORS(mux))

	logger.Info("server listening",
		zap.String("addr", cfg.Addr()),
		zap.String("environment", cfg.Environment),
		zap.String("db_path", cfg.DBPath),
	)
	if err := http.ListenAndServe(cfg.Addr(), handler); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func newLogger(environment string) *zap.Logger {
	if environment == "production" {
		logger, _ := zap.NewProduction()
		return logger
	}
	logger, _ := zap.NewDevelopment()
	return logger
}

// openDatabase opens the store, ensures the schema and seeds an empty
// catalog. An open failure is not fatal: the server stays up and every
// request surfaces a storage error until the store recovers.
func openDatabase(cfg *config.Config, logger *zap.Logger) *sql.DB {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		os.MkdirAll(dir, 0o755)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("opening database, serving degraded", zap.Error(err))
		database, _ = sql.Open("sqlite", cfg.DBPath)
		return database
	}

	if err := db.EnsureSchema(database); err != nil {
		logger.Error("ensuring schema", zap.Error(err))
		return database
	}

	if err := store.SeedIfEmpty(context.Background(), database, logger); err != nil {
		logger.Error("seeding catalog", zap.Error(err))
	}

	return database
}
