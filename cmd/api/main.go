package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dev-Icaro/pet-impacta/internal/adapters/storage/postgres"
	"github.com/Dev-Icaro/pet-impacta/internal/config"
	"github.com/Dev-Icaro/pet-impacta/internal/platform/logger"
	"github.com/Dev-Icaro/pet-impacta/internal/router"
)

func main() {
	cfg := config.Load()
	log := logger.NewFromEnv()

	opts := router.Options{
		Logger:         log,
		AllowedOrigins: cfg.AllowedOrigins,
	}

	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DatabaseURL, cfg.DBMaxConns)
		if err != nil {
			log.Error("database connection failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer db.Close()
		opts.DB = db
		log.Info("connected to postgres", nil)
	} else {
		log.Warn("DATABASE_URL not set, using in-memory storage", nil)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	log.Info("server started", map[string]any{"addr": srv.Addr})

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown error", map[string]any{"error": err.Error()})
		}
		log.Info("server stopped", nil)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Error("server error", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}
}
