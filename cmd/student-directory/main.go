// main is the entry point of the student directory service.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file
//  2. Initialise the logger
//  3. Build the storage backend (in-memory directory or SQLite)
//  4. Load the seed students into an empty store
//  5. Register HTTP routes and middleware
//  6. Serve until SIGINT/SIGTERM, then shut down gracefully
//
// RUNNING THE SERVER:
//
//	go run ./cmd/student-directory --config=config/local.yaml
//
// or:
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/student-directory
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aanand-mishra/student-directory/internal/config"
	"github.com/aanand-mishra/student-directory/internal/directory"
	"github.com/aanand-mishra/student-directory/internal/http/handlers/student"
	"github.com/aanand-mishra/student-directory/internal/http/middleware"
	"github.com/aanand-mishra/student-directory/internal/logger"
	"github.com/aanand-mishra/student-directory/internal/storage"
	"github.com/aanand-mishra/student-directory/internal/storage/memory"
	"github.com/aanand-mishra/student-directory/internal/storage/sqlite"
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(cfg.Env)
	// Handlers log through the package-level slog functions.
	slog.SetDefault(log)

	log.Info("starting student-directory",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.Backend),
	)

	store, closer, err := newStorage(cfg)
	if err != nil {
		log.Error("failed to initialise storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closer.Close()

	seeded, err := storage.Seed(store, cfg.Seed)
	if err != nil {
		log.Error("failed to seed storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log.Info("storage initialised", slog.Int("seeded", seeded))

	router := http.NewServeMux()
	student.Register(router, store)

	server := &http.Server{
		Addr: cfg.HTTPServer.Addr,
		Handler: middleware.Chain(router,
			middleware.RequestID,
			middleware.Logging(log),
			middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
		),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server encountered an error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newStorage builds the configured backend. The returned closer releases
// whatever the backend holds open.
func newStorage(cfg *config.Config) (storage.Storage, io.Closer, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return memory.New(directory.New()), nopCloser{}, nil
	case config.BackendSQLite:
		db, err := sqlite.New(cfg)
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
