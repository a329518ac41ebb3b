package shopsearch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/shopsearch/internal/db"
	"github.com/kailas-cloud/shopsearch/internal/db/memory"
	dbRedis "github.com/kailas-cloud/shopsearch/internal/db/redis"
	"github.com/kailas-cloud/shopsearch/internal/domain"
	"github.com/kailas-cloud/shopsearch/internal/domain/catalog"
	"github.com/kailas-cloud/shopsearch/internal/domain/search/filter"
	catalogrepo "github.com/kailas-cloud/shopsearch/internal/repository/catalog"
	historyrepo "github.com/kailas-cloud/shopsearch/internal/repository/history"
	historyuc "github.com/kailas-cloud/shopsearch/internal/usecase/history"
	searchuc "github.com/kailas-cloud/shopsearch/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

const (
	driverMemory = "memory"
	driverRedis  = "redis"
	driverValkey = "valkey"
)

// Errors returned by the Client. Use errors.Is.
var (
	ErrNotFound           = domain.ErrNotFound
	ErrInvalidQuery       = domain.ErrInvalidQuery
	ErrCatalogUnavailable = domain.ErrCatalogUnavailable
	ErrInvalidCatalog     = domain.ErrInvalidCatalog
)

// Client is the shopsearch SDK entry point.
type Client struct {
	store       db.Store
	catalog     *catalogrepo.Repo
	catalogPath string
	searchSvc   *searchuc.Service
	historySvc  *historyuc.Service
}

// New creates a Client, loads its catalog and connects the history store.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{driver: driverMemory}
	for _, o := range opts {
		o(cfg)
	}

	cat := catalogrepo.New()
	if err := loadCatalog(cat, cfg); err != nil {
		return nil, err
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("shopsearch: database not ready: %w", err)
	}

	return wireClient(store, cat, cfg), nil
}

func loadCatalog(cat *catalogrepo.Repo, cfg *clientConfig) error {
	switch {
	case cfg.catalogPath != "" && len(cfg.products) > 0:
		return errors.New("shopsearch: use either WithCatalogFile or WithProducts, not both")
	case cfg.catalogPath != "":
		if err := cat.LoadFile(cfg.catalogPath); err != nil {
			return fmt.Errorf("shopsearch: %w", err)
		}
	case len(cfg.products) > 0:
		entries := make([]catalog.Entry, len(cfg.products))
		for i, p := range cfg.products {
			e, err := productToEntry(p)
			if err != nil {
				return fmt.Errorf("shopsearch: product %d: %w: %w", i, ErrInvalidCatalog, err)
			}
			entries[i] = e
		}
		if err := cat.Replace(entries); err != nil {
			return fmt.Errorf("shopsearch: %w", err)
		}
	default:
		if err := cat.Replace(catalog.Sample()); err != nil {
			return fmt.Errorf("shopsearch: %w", err)
		}
	}
	return nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case driverMemory:
		return memory.NewStore(), nil
	case driverValkey, driverRedis:
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("shopsearch: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("shopsearch: unknown driver %q", cfg.driver)
	}
}

func wireClient(store db.Store, cat *catalogrepo.Repo, cfg *clientConfig) *Client {
	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	searchSvc := searchuc.New(cat, logger)
	if cfg.popular != nil {
		searchSvc = searchSvc.WithPopular(cfg.popular)
	}
	historySvc := historyuc.New(historyrepo.New(store, cfg.historyKey), logger).
		WithLimit(cfg.historyLimit)

	return &Client{
		store:       store,
		catalog:     cat,
		catalogPath: cfg.catalogPath,
		searchSvc:   searchSvc,
		historySvc:  historySvc,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks history store connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Reload reads the catalog file again. On failure the current catalog stays active.
// Clients built without WithCatalogFile have nothing to reload.
func (c *Client) Reload(_ context.Context) error {
	if c.catalogPath == "" {
		return errors.New("shopsearch: no catalog file configured")
	}
	if err := c.catalog.LoadFile(c.catalogPath); err != nil {
		return fmt.Errorf("reload catalog: %w", err)
	}
	return nil
}

// Search starts a search query. Configure it with the builder methods and call Do.
func (c *Client) Search(query string) *SearchBuilder {
	return &SearchBuilder{svc: c.searchSvc, query: query}
}

// Suggest returns dropdown suggestions for partial input, catalog completions
// first, then matching popular searches. limit <= 0 means the default of 6.
func (c *Client) Suggest(ctx context.Context, partial string, limit int) ([]Suggestion, error) {
	items, err := c.searchSvc.Suggest(ctx, partial, limit)
	if err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}
	out := make([]Suggestion, len(items))
	for i := range items {
		out[i] = suggestionFromDomain(&items[i])
	}
	return out, nil
}

// Products returns the catalog in its stored order.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	entries, err := c.searchSvc.List(ctx, filter.Filter{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return entriesToProducts(entries), nil
}

// Product returns one product by ID. A missing ID yields ErrNotFound.
func (c *Client) Product(ctx context.Context, id int) (Product, error) {
	e, err := c.searchSvc.Get(ctx, id)
	if err != nil {
		return Product{}, err
	}
	return entryToProduct(&e), nil
}

// ProductsInCategory returns the products whose category equals category.
func (c *Client) ProductsInCategory(ctx context.Context, category string) ([]Product, error) {
	entries, err := c.searchSvc.ByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return entriesToProducts(entries), nil
}

// Categories returns the distinct categories in first-seen order.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	cats, err := c.searchSvc.Categories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Category, len(cats))
	for i, cat := range cats {
		out[i] = Category{Name: cat.Name, ItemCount: cat.ItemCount}
	}
	return out, nil
}

// History returns the recent-search service.
func (c *Client) History() *HistoryService {
	return &HistoryService{svc: c.historySvc}
}

// HistoryService manages recent searches. Storage failures are logged and
// absorbed: reads return an empty list and writes are dropped.
type HistoryService struct {
	svc *historyuc.Service
}

// Get returns recent searches, most recent first.
func (h *HistoryService) Get(ctx context.Context) []string { return h.svc.Get(ctx) }

// Add records term at the front of the list and returns the new list.
func (h *HistoryService) Add(ctx context.Context, term string) []string { return h.svc.Add(ctx, term) }

// Clear forgets every recent search.
func (h *HistoryService) Clear(ctx context.Context) { h.svc.Clear(ctx) }

// Seed stores terms when no history exists yet and reports whether it did.
func (h *HistoryService) Seed(ctx context.Context, terms ...string) bool {
	return h.svc.Seed(ctx, terms)
}
