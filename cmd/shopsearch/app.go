package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/shopsearch/internal/config"
	"github.com/kailas-cloud/shopsearch/internal/db"
	"github.com/kailas-cloud/shopsearch/internal/db/memory"
	dbRedis "github.com/kailas-cloud/shopsearch/internal/db/redis"
	logpkg "github.com/kailas-cloud/shopsearch/internal/logger"
	catalogrepo "github.com/kailas-cloud/shopsearch/internal/repository/catalog"
	historyrepo "github.com/kailas-cloud/shopsearch/internal/repository/history"
	healthuc "github.com/kailas-cloud/shopsearch/internal/usecase/health"
	historyuc "github.com/kailas-cloud/shopsearch/internal/usecase/history"
	searchuc "github.com/kailas-cloud/shopsearch/internal/usecase/search"
)

// appOptions are the persistent flags shared by every subcommand.
type appOptions struct {
	env         string
	configPath  string
	catalogPath string
}

// app is the composition root: config, logger, store, catalog and services.
type app struct {
	env     string
	cfg     config.Config
	logger  *zap.Logger
	store   db.Store
	catalog *catalogrepo.Repo
	search  *searchuc.Service
	history *historyuc.Service
	health  *healthuc.Service
}

func newApp(ctx context.Context, opts *appOptions) (*app, error) {
	env := opts.env
	if env == "" {
		env = config.GetEnv()
	}

	var (
		cfg config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load(env)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.catalogPath != "" {
		cfg.Catalog.Path = opts.catalogPath
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := newStore(ctx, cfg.Database)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	catalog := catalogrepo.New()
	if err := catalog.LoadFile(cfg.Catalog.Path); err != nil {
		store.Close()
		_ = logger.Sync()
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	a := &app{
		env:     env,
		cfg:     cfg,
		logger:  logger,
		store:   store,
		catalog: catalog,
	}
	a.search = searchuc.New(catalog, logger).
		WithPopular(cfg.Suggest.Popular).
		WithSuggestLimits(cfg.Suggest.MaxSuggestions, cfg.Suggest.MergedLimit)
	a.history = historyuc.New(historyrepo.New(store, cfg.History.Key), logger).
		WithLimit(cfg.History.Limit)
	a.health = healthuc.New(store, catalog)
	return a, nil
}

// newStore connects the history store for the configured driver.
// Redis and Valkey share the RESP client.
func newStore(ctx context.Context, cfg config.DatabaseConfig) (db.Store, error) {
	var (
		store db.Store
		err   error
	)
	switch cfg.Driver {
	case config.DriverMemory:
		store = memory.NewStore()
	case config.DriverRedis, config.DriverValkey:
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Addrs,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create database store: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}

	if err := store.WaitForReady(ctx, time.Duration(cfg.ReadinessTimeout)*time.Second); err != nil {
		store.Close()
		return nil, fmt.Errorf("database not ready: %w", err)
	}
	return store, nil
}

func (a *app) close() {
	a.store.Close()
	_ = a.logger.Sync()
}
