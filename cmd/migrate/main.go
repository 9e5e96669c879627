package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/joho/godotenv"

	"github.com/kellyband/site/internal/config"
	"github.com/kellyband/site/internal/logging"
	"github.com/kellyband/site/internal/repository"
)

// migrate creates the contacts table in the configured store if it does not
// exist yet. Existing data is never touched.
func main() {
	_ = godotenv.Load()
	_ = godotenv.Load("../.env")

	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := repository.OpenStore(ctx, cfg)
	if err != nil {
		logging.Fatal("schema setup failed", "error", err)
	}
	defer store.Close()

	if err := store.Ping(ctx); err != nil {
		logging.Fatal("store unreachable after setup", "error", err)
	}
	slog.Info("contacts schema ready")
}
