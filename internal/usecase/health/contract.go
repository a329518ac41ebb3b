package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CatalogSizer reports how many entries the active catalog holds.
type CatalogSizer interface {
	Len() int
}
