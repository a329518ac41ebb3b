package request

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/shopsearch/internal/domain/search/filter"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length in bytes.
	MaxQueryLength   = 256
	DefaultMinScore  = 10
	DefaultMaxResult = 50
	MaxMaxResults    = 500
)

// Request is a validated search query with ranking options.
type Request struct {
	query           string
	minScore        int
	maxResults      int
	fuzzy           bool
	sortByRelevance bool
	highlight       bool
	filter          filter.Filter
}

// Params carries raw search parameters. Nil pointers take defaults.
type Params struct {
	Query           string
	MinScore        *int
	MaxResults      *int
	Fuzzy           *bool
	SortByRelevance *bool
	Highlight       bool
	Filter          filter.Filter
}

// New validates and normalizes search parameters.
// Defaults: minScore=10, maxResults=50, fuzzy=true, sortByRelevance=true.
// A blank query is valid and means "no text constraint".
func New(p Params) (Request, error) {
	query := strings.TrimSpace(p.Query)
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("query too long (max %d chars)", MaxQueryLength)
	}

	minScore := DefaultMinScore
	if p.MinScore != nil {
		if *p.MinScore < 0 {
			return Request{}, fmt.Errorf("min_score must not be negative")
		}
		minScore = *p.MinScore
	}

	maxResults := DefaultMaxResult
	if p.MaxResults != nil {
		if *p.MaxResults <= 0 || *p.MaxResults > MaxMaxResults {
			return Request{}, fmt.Errorf("max_results must be between 1 and %d", MaxMaxResults)
		}
		maxResults = *p.MaxResults
	}

	fuzzy := true
	if p.Fuzzy != nil {
		fuzzy = *p.Fuzzy
	}
	sortByRelevance := true
	if p.SortByRelevance != nil {
		sortByRelevance = *p.SortByRelevance
	}

	return Request{
		query:           query,
		minScore:        minScore,
		maxResults:      maxResults,
		fuzzy:           fuzzy,
		sortByRelevance: sortByRelevance,
		highlight:       p.Highlight,
		filter:          p.Filter,
	}, nil
}

// Query returns the trimmed query text.
func (r *Request) Query() string { return r.query }

// MinScore returns the relevance threshold.
func (r *Request) MinScore() int { return r.minScore }

// MaxResults returns the result cap.
func (r *Request) MaxResults() int { return r.maxResults }

// Fuzzy returns the reserved fuzzy flag. Scoring ignores it.
func (r *Request) Fuzzy() bool { return r.fuzzy }

// SortByRelevance reports whether results are ordered by score.
func (r *Request) SortByRelevance() bool { return r.sortByRelevance }

// Highlight reports whether matched terms should be marked in names.
func (r *Request) Highlight() bool { return r.highlight }

// Filter returns the attribute pre-filter.
func (r *Request) Filter() filter.Filter { return r.filter }
