// @title Job Board API
// @version 1.0
// @description Recruiter workflow and public job board backed by the profile record store.
// @BasePath /api/v1
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"jobboard-backend/internal/config"
	"jobboard-backend/internal/logger"
	"jobboard-backend/internal/server"
)

func gracefulShutdown(srv *http.Server, lg *zap.Logger, done chan<- struct{}) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	lg.Info("shutting down gracefully, press Ctrl+C again to force")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		lg.Error("server forced to shutdown", zap.Error(err))
	}

	lg.Info("server exiting")
	done <- struct{}{}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()
	lg.Info("starting job board API", zap.Stringer("config", cfg))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := server.New(ctx, cfg, lg)
	if err != nil {
		lg.Fatal("failed to initialize server", zap.Error(err))
	}
	defer func() {
		if err := app.Close(); err != nil {
			lg.Warn("failed to close connections", zap.Error(err))
		}
	}()

	srv := app.HTTPServer()
	done := make(chan struct{}, 1)
	go gracefulShutdown(srv, lg, done)

	lg.Info("listening", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		lg.Fatal("http server error", zap.Error(err))
	}

	<-done
	lg.Info("graceful shutdown complete")
}
