package shopsearch

import "go.uber.org/zap"

// Option configures the Client.
type Option func(*clientConfig)

type clientConfig struct {
	driver   string // "memory", "redis" or "valkey"
	addrs    []string
	password string

	catalogPath string
	products    []Product

	popular      []string
	historyKey   string
	historyLimit int

	logger *zap.Logger
}

// WithMemory keeps history in process memory. This is the default.
func WithMemory() Option {
	return func(c *clientConfig) {
		c.driver = driverMemory
		c.addrs = nil
	}
}

// WithValkey stores history in a Valkey instance.
func WithValkey(addr, password string) Option {
	return func(c *clientConfig) {
		c.driver = driverValkey
		c.addrs = []string{addr}
		c.password = password
	}
}

// WithRedis stores history in a Redis instance.
func WithRedis(addr, password string) Option {
	return func(c *clientConfig) {
		c.driver = driverRedis
		c.addrs = []string{addr}
		c.password = password
	}
}

// WithCatalogFile loads the catalog from a YAML or JSON file.
// Client.Reload reads the file again.
func WithCatalogFile(path string) Option {
	return func(c *clientConfig) {
		c.catalogPath = path
	}
}

// WithProducts serves the given products as the catalog.
func WithProducts(products ...Product) Option {
	return func(c *clientConfig) {
		c.products = append(c.products, products...)
	}
}

// WithPopular replaces the popular searches merged into suggestions.
func WithPopular(terms ...string) Option {
	return func(c *clientConfig) {
		c.popular = terms
	}
}

// WithHistoryKey sets the storage key name for recent searches.
func WithHistoryKey(name string) Option {
	return func(c *clientConfig) {
		c.historyKey = name
	}
}

// WithHistoryLimit caps the recent-search list.
func WithHistoryLimit(n int) Option {
	return func(c *clientConfig) {
		c.historyLimit = n
	}
}

// WithLogger sets the logger for absorbed history failures. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}
