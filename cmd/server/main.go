package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mmex-search/internal/config"
	"mmex-search/internal/database"
	"mmex-search/internal/server"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run owns every resource so its defers execute before main exits
func run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	srv := server.New(server.Dependencies{
		Config: cfg,
		DB:     db.DB,
		Health: db,
		Logger: logger,
	})
	srv.RunBackground(ctx)

	httpServer := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      srv.Echo,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	logger.Info("Starting server", "addr", httpServer.Addr, "environment", cfg.Server.Environment)
	return serve(ctx, httpServer, httpServer.ListenAndServe, cfg.Server.ShutdownTimeout, logger)
}

// serve runs listen until it fails or ctx ends. A listener failure is
// returned; on ctx end the server is shut down within shutdownTimeout.
func serve(ctx context.Context, httpServer *http.Server, listen func() error, shutdownTimeout time.Duration, logger *slog.Logger) error {
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- listen()
	}()

	select {
	case err := <-listenErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
