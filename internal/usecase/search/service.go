package search

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/shopsearch/internal/domain"
	"github.com/kailas-cloud/shopsearch/internal/domain/catalog"
	"github.com/kailas-cloud/shopsearch/internal/domain/search/filter"
	"github.com/kailas-cloud/shopsearch/internal/domain/search/request"
	"github.com/kailas-cloud/shopsearch/internal/domain/search/result"
	"github.com/kailas-cloud/shopsearch/internal/domain/suggestion"
	"github.com/kailas-cloud/shopsearch/internal/ranking"
)

// Suggestion limits.
const (
	// DefaultMergedLimit caps catalog and popular suggestions combined.
	DefaultMergedLimit = 6
	// MaxSuggestionLimit is the largest limit a caller may request.
	MaxSuggestionLimit = 20
	// popularOnEmpty is how many popular searches an empty input shows.
	popularOnEmpty = 4
)

// Service ranks catalog entries and builds dropdown suggestions.
type Service struct {
	catalog        Catalog
	popular        []string
	maxSuggestions int
	mergedLimit    int

	searchesTotal    *prometheus.CounterVec
	resultsCount     prometheus.Histogram
	suggestionsTotal *prometheus.CounterVec
	logger           *zap.Logger
}

// New creates a search service with the default popular searches.
func New(cat Catalog, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		catalog:        cat,
		popular:        domain.DefaultPopularSearches(),
		maxSuggestions: ranking.DefaultMaxSuggestions,
		mergedLimit:    DefaultMergedLimit,
		logger:         logger,
	}
}

// WithPopular replaces the popular searches list. nil keeps the current list.
func (s *Service) WithPopular(popular []string) *Service {
	if popular != nil {
		s.popular = slices.Clone(popular)
	}
	return s
}

// WithSuggestLimits sets the catalog suggestion cap and the merged cap.
// Values <= 0 keep the current setting.
func (s *Service) WithSuggestLimits(maxSuggestions, merged int) *Service {
	if maxSuggestions > 0 {
		s.maxSuggestions = maxSuggestions
	}
	if merged > 0 {
		s.mergedLimit = merged
	}
	return s
}

// WithMetrics sets search and suggestion metrics. Any of them may be nil.
func (s *Service) WithMetrics(
	searches *prometheus.CounterVec,
	results prometheus.Histogram,
	suggestions *prometheus.CounterVec,
) *Service {
	s.searchesTotal = searches
	s.resultsCount = results
	s.suggestionsTotal = suggestions
	return s
}

// Search filters the catalog by req's attribute filter and ranks what is left.
// A blank query returns every filtered entry with score 0 in catalog order.
func (s *Service) Search(ctx context.Context, req *request.Request) ([]result.Scored, error) {
	entries, err := s.catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	entries = req.Filter().Apply(entries)

	opts := ranking.Options{
		Fuzzy:           req.Fuzzy(),
		MinScore:        req.MinScore(),
		MaxResults:      req.MaxResults(),
		SortByRelevance: req.SortByRelevance(),
	}
	scored := ranking.SearchScored(entries, req.Query(), opts)

	if req.Query() == "" {
		s.countSearch("blank")
		return scored, nil
	}

	if req.Highlight() {
		for i := range scored {
			e := scored[i].Entry()
			scored[i] = scored[i].WithHighlight(result.Highlight{
				Name:        ranking.Highlight(e.Name(), req.Query()),
				Description: ranking.Highlight(e.Description(), req.Query()),
			})
		}
	}

	if len(scored) == 0 {
		s.countSearch("empty")
	} else {
		s.countSearch("hit")
	}
	if s.resultsCount != nil {
		s.resultsCount.Observe(float64(len(scored)))
	}
	s.logger.Debug("search",
		zap.String("query", req.Query()),
		zap.Int("candidates", len(entries)),
		zap.Int("results", len(scored)),
	)
	return scored, nil
}

// Suggest merges catalog completions with matching popular searches, catalog
// first, unique by text and capped at limit (<= 0 means the configured cap).
// An empty partial returns the first few popular searches.
func (s *Service) Suggest(ctx context.Context, partial string, limit int) ([]suggestion.Suggestion, error) {
	if limit > MaxSuggestionLimit {
		return nil, fmt.Errorf("%w: limit must be at most %d", domain.ErrInvalidQuery, MaxSuggestionLimit)
	}
	if limit <= 0 {
		limit = s.mergedLimit
	}

	partial = strings.TrimSpace(partial)
	if partial == "" {
		out := make([]suggestion.Suggestion, 0, popularOnEmpty)
		for _, p := range s.popular[:min(popularOnEmpty, len(s.popular), limit)] {
			out = append(out, suggestion.New(p, suggestion.Popular, nil))
		}
		s.countSuggest("empty")
		return out, nil
	}

	entries, err := s.catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	fromCatalog := ranking.Suggest(entries, partial, s.maxSuggestions)
	fromPopular := ranking.FilterPopular(s.popular, partial)
	out := ranking.MergeSuggestions(limit, fromCatalog, fromPopular)

	switch {
	case len([]rune(partial)) < ranking.MinSuggestLength && len(fromPopular) == 0:
		s.countSuggest("short")
	case len(out) == 0:
		s.countSuggest("empty")
	default:
		s.countSuggest("hit")
	}
	return out, nil
}

// List returns the catalog narrowed by f, in catalog order.
func (s *Service) List(ctx context.Context, f filter.Filter) ([]catalog.Entry, error) {
	entries, err := s.catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return f.Apply(entries), nil
}

// Get returns one entry by ID.
func (s *Service) Get(ctx context.Context, id int) (catalog.Entry, error) {
	e, err := s.catalog.Get(ctx, id)
	if err != nil {
		return catalog.Entry{}, fmt.Errorf("get entry: %w", err)
	}
	return e, nil
}

// ByCategory returns the entries of one category.
func (s *Service) ByCategory(ctx context.Context, category string) ([]catalog.Entry, error) {
	entries, err := s.catalog.ByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list category: %w", err)
	}
	return entries, nil
}

// Categories returns the distinct categories with entry counts.
func (s *Service) Categories(ctx context.Context) ([]catalog.Category, error) {
	entries, err := s.catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	cats := catalog.Categories(entries)
	if cats == nil {
		cats = []catalog.Category{}
	}
	return cats, nil
}

func (s *Service) countSearch(outcome string) {
	if s.searchesTotal != nil {
		s.searchesTotal.WithLabelValues(outcome).Inc()
	}
}

func (s *Service) countSuggest(outcome string) {
	if s.suggestionsTotal != nil {
		s.suggestionsTotal.WithLabelValues(outcome).Inc()
	}
}
