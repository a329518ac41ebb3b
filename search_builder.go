package shopsearch

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/shopsearch/internal/domain/search/filter"
	"github.com/kailas-cloud/shopsearch/internal/domain/search/request"
	searchuc "github.com/kailas-cloud/shopsearch/internal/usecase/search"
)

// SearchBuilder is a fluent builder for search queries.
type SearchBuilder struct {
	svc   *searchuc.Service
	query string

	// Ranking parameters. nil takes the default.
	minScore   *int
	maxResults *int
	byScore    *bool
	highlight  bool

	// Attribute filter.
	category  string
	priceMin  *float64
	priceMax  *float64
	minRating *float64
}

// MinScore drops results scoring below n. Default 10.
func (b *SearchBuilder) MinScore(n int) *SearchBuilder {
	b.minScore = &n
	return b
}

// Limit caps the number of results. Default 50.
func (b *SearchBuilder) Limit(n int) *SearchBuilder {
	b.maxResults = &n
	return b
}

// CatalogOrder keeps matching products in catalog order instead of sorting by score.
func (b *SearchBuilder) CatalogOrder() *SearchBuilder {
	off := false
	b.byScore = &off
	return b
}

// Highlight marks query matches in Hit.HighlightedName and Hit.HighlightedDescription.
func (b *SearchBuilder) Highlight() *SearchBuilder {
	b.highlight = true
	return b
}

// Category restricts results to one category (exact match).
func (b *SearchBuilder) Category(name string) *SearchBuilder {
	b.category = name
	return b
}

// Price restricts results to an inclusive price range.
func (b *SearchBuilder) Price(lo, hi float64) *SearchBuilder {
	b.priceMin = &lo
	b.priceMax = &hi
	return b
}

// MinRating drops products rated below r.
func (b *SearchBuilder) MinRating(r float64) *SearchBuilder {
	b.minRating = &r
	return b
}

// Do executes the search. A blank query returns every matching product with score 0.
func (b *SearchBuilder) Do(ctx context.Context) ([]Hit, error) {
	var price *filter.Range
	if b.priceMin != nil || b.priceMax != nil {
		r, err := filter.NewRange(b.priceMin, b.priceMax)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
		}
		price = &r
	}
	f, err := filter.New(b.category, price, b.minRating)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	req, err := request.New(request.Params{
		Query:           b.query,
		MinScore:        b.minScore,
		MaxResults:      b.maxResults,
		SortByRelevance: b.byScore,
		Highlight:       b.highlight,
		Filter:          f,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	scored, err := b.svc.Search(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	hits := make([]Hit, len(scored))
	for i := range scored {
		hits[i] = scoredToHit(&scored[i])
	}
	return hits, nil
}
