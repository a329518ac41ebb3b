package search

import (
	"context"

	"github.com/kailas-cloud/shopsearch/internal/domain/catalog"
)

// Catalog reads the active product catalog.
type Catalog interface {
	All(ctx context.Context) ([]catalog.Entry, error)
	Get(ctx context.Context, id int) (catalog.Entry, error)
	ByCategory(ctx context.Context, category string) ([]catalog.Entry, error)
}
