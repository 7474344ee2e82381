// Package main starts an HTTP server that provides endpoints for health checks
// and ladder structural analysis. It uses the internal handlers package to
// process incoming requests and return JSON responses.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/ladderscope/core/cmd/api/middleware"
	"github.com/ladderscope/core/internal/config"
	"github.com/ladderscope/core/internal/handlers"
	"github.com/ladderscope/core/internal/metrics"
)

func newRouter(cfg *config.Config, logger *slog.Logger, reg *metrics.Registry) http.Handler {
	analyzer := handlers.NewAnalyzer(logger, reg, cfg.Options(), cfg.Server.MaxBodyBytes)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Instrument(reg, logger))
	r.Use(middleware.Cors(cfg.Server.AllowedOrigin))

	r.Get("/health", handlers.NewHealthHandler(cfg.Options()))
	r.Post("/analyze", analyzer.AnalyzeHandler)
	r.Post("/self-holding", analyzer.SelfHoldingHandler)
	r.Post("/parallel", analyzer.ParallelHandler)
	r.Method(http.MethodGet, "/metrics", reg.Handler())

	return r
}

func main() {
	configPath := flag.String("config", "", "path to ladderscope.yaml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           newRouter(cfg, logger, metrics.DefaultRegistry()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", cfg.Server.Addr, "port_scope", cfg.Analysis.PortScope)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
