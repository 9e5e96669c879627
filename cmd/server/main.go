package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kellyband/site/internal/config"
	"github.com/kellyband/site/internal/content"
	"github.com/kellyband/site/internal/handler"
	"github.com/kellyband/site/internal/logging"
	"github.com/kellyband/site/internal/repository"
	"github.com/kellyband/site/internal/service"
	"github.com/kellyband/site/pkg/auth"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	operator := auth.Operator{
		Username:     cfg.AdminUsername,
		Password:     cfg.AdminPassword,
		PasswordHash: cfg.AdminPasswordHash,
	}
	if !operator.Configured() {
		slog.Warn("ADMIN_PASSWORD is not set; /admin routes will respond 500")
	}

	store, err := repository.OpenStore(context.Background(), cfg)
	if err != nil {
		logging.Fatal("failed to open database", "error", err)
	}
	defer store.Close()

	catalog, err := content.Load(cfg.ContentFile)
	if err != nil {
		logging.Fatal("failed to load site content", "error", err)
	}
	renderer, err := handler.NewRenderer()
	if err != nil {
		logging.Fatal("failed to parse templates", "error", err)
	}

	contactService := service.NewContactService(store)

	router := handler.NewRouter(handler.Routes{
		Health:   handler.New(store),
		Pages:    handler.NewPageHandler(catalog, renderer),
		Contacts: handler.NewContactHandler(contactService, renderer),
		Operator: operator,
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
