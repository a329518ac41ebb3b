package ranking

import (
	"slices"
	"sort"
	"strings"

	"github.com/kailas-cloud/shopsearch/internal/domain/catalog"
	"github.com/kailas-cloud/shopsearch/internal/domain/search/result"
)

// Search defaults.
const (
	DefaultMinScore   = 10
	DefaultMaxResults = 50
)

// Options controls Search. Build from DefaultOptions; the zero value disables sorting.
type Options struct {
	// Fuzzy is a reserved toggle. Scoring always adds the fuzzy token bonus,
	// so the flag is carried for callers but does not change results.
	Fuzzy bool
	// MinScore drops entries scoring below it.
	MinScore int
	// MaxResults caps the result length. Values <= 0 mean DefaultMaxResults.
	MaxResults int
	// SortByRelevance orders results by descending score, ties in catalog order.
	SortByRelevance bool
}

// DefaultOptions returns fuzzy=true, minScore=10, maxResults=50, sortByRelevance=true.
func DefaultOptions() Options {
	return Options{
		Fuzzy:           true,
		MinScore:        DefaultMinScore,
		MaxResults:      DefaultMaxResults,
		SortByRelevance: true,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithMinScore sets the relevance threshold.
func WithMinScore(n int) Option { return func(o *Options) { o.MinScore = n } }

// WithMaxResults sets the result cap.
func WithMaxResults(n int) Option { return func(o *Options) { o.MaxResults = n } }

// WithFuzzy sets the reserved Fuzzy flag.
func WithFuzzy(on bool) Option { return func(o *Options) { o.Fuzzy = on } }

// WithSortByRelevance toggles score ordering.
func WithSortByRelevance(on bool) Option { return func(o *Options) { o.SortByRelevance = on } }

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Search filters and ranks entries against query.
// A blank query returns a copy of entries in their original order.
// The input slice is never modified.
func Search(entries []catalog.Entry, query string, opts Options) []catalog.Entry {
	if strings.TrimSpace(query) == "" {
		return slices.Clone(entries)
	}
	return result.Entries(SearchScored(entries, query, opts))
}

// SearchScored is Search keeping each entry's score.
// A blank query yields every entry with score 0.
func SearchScored(entries []catalog.Entry, query string, opts Options) []result.Scored {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		out := make([]result.Scored, len(entries))
		for i := range entries {
			out[i] = result.New(entries[i], 0)
		}
		return out
	}

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	scored := make([]result.Scored, 0, len(entries))
	for i := range entries {
		s := score(&entries[i], term)
		if s >= opts.MinScore {
			scored = append(scored, result.New(entries[i], s))
		}
	}

	if opts.SortByRelevance {
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].Score() > scored[j].Score()
		})
	}

	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}
	return scored
}
