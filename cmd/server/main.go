package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chrono/internal/convert"
	convertmetrics "chrono/internal/convert/metrics"
	"chrono/internal/platform/config"
	"chrono/internal/platform/httpserver"
	"chrono/internal/platform/logger"
	httptransport "chrono/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Domain logic lives in pkg/temporal and
// internal/convert.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	svc := convert.New(convert.MustZone(cfg.DefaultZone), log, convertmetrics.New())
	router := httptransport.NewRouter(svc, log)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting chrono", "addr", cfg.Addr, "default_zone", cfg.DefaultZone)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
