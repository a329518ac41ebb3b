package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/shopsearch/internal/domain"
	"github.com/kailas-cloud/shopsearch/internal/metrics"
	catalogrepo "github.com/kailas-cloud/shopsearch/internal/repository/catalog"
	chiTransport "github.com/kailas-cloud/shopsearch/internal/transport/chi"
	"github.com/kailas-cloud/shopsearch/internal/version"
)

func serveCmd(opts *appOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  "Start the search API, reloading the catalog file on change when catalog.watch is set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts, port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides http.port)")

	return cmd
}

func runServe(parent context.Context, opts *appOptions, port int) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, opts)
	if err != nil {
		return err
	}
	defer a.close()

	cfg := a.cfg
	if port > 0 {
		cfg.HTTP.Port = port
	}
	logger := a.logger

	logger.Info("Starting shopsearch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("catalog", cfg.Catalog.Path),
		zap.Int("catalog_entries", a.catalog.Len()),
	)

	metrics.RegisterSearchMetrics()
	metrics.CatalogEntries.Set(float64(a.catalog.Len()))
	a.search.WithMetrics(metrics.SearchRequestsTotal, metrics.SearchResults, metrics.SuggestionRequestsTotal)
	a.history.WithErrorCounter(metrics.HistoryErrorsTotal)

	seed := cfg.History.Seed
	if seed == nil {
		seed = domain.DefaultHistorySeed()
	}
	a.history.Seed(ctx, seed)

	if cfg.Catalog.Watch {
		w := catalogrepo.NewWatcher(
			a.catalog, cfg.Catalog.Path,
			time.Duration(cfg.Catalog.ReloadDebounceMs)*time.Millisecond, logger,
		).WithMetrics(metrics.CatalogReloadsTotal, metrics.CatalogEntries)
		go func() {
			if err := w.Run(ctx); err != nil {
				logger.Error("Catalog watcher stopped", zap.Error(err))
			}
		}()
	}

	server := chiTransport.NewServer(a.search, a.history, a.health, logger).
		WithSearchDefaults(chiTransport.SearchDefaults{
			MinScore:        cfg.Search.MinScore,
			MaxResults:      cfg.Search.MaxResults,
			Fuzzy:           *cfg.Search.Fuzzy,
			SortByRelevance: *cfg.Search.SortByRelevance,
		})

	r := chi.NewRouter()
	r.Use(chiTransport.JSONRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(chiTransport.WideEvent(logger))
	r.Use(metrics.Middleware())
	r.Handle("/metrics", promhttp.Handler())
	server.Register(r, cfg.Auth.APIKeys)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
	return nil
}
