package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kailas-cloud/shopsearch/internal/domain/catalog"
)

// Filter narrows the catalog by entry attributes before ranking.
// The zero value matches every entry.
type Filter struct {
	category  string
	price     *Range
	minRating *float64
}

// New validates and creates a Filter.
// category is an exact label match; price and minRating are optional.
func New(category string, price *Range, minRating *float64) (Filter, error) {
	if minRating != nil && (*minRating < 0 || *minRating > 5) {
		return Filter{}, fmt.Errorf("min_rating must be between 0 and 5, got %v", *minRating)
	}
	return Filter{category: category, price: price, minRating: minRating}, nil
}

// Category returns the category constraint ("" when unset).
func (f Filter) Category() string { return f.category }

// Price returns the price range constraint.
func (f Filter) Price() *Range { return f.price }

// MinRating returns the minimum rating constraint.
func (f Filter) MinRating() *float64 { return f.minRating }

// IsEmpty reports whether the filter has no constraints.
func (f Filter) IsEmpty() bool {
	return f.category == "" && f.price == nil && f.minRating == nil
}

// Matches reports whether the entry satisfies every constraint.
func (f Filter) Matches(e *catalog.Entry) bool {
	if f.category != "" && e.Category() != f.category {
		return false
	}
	if f.price != nil && !f.price.Contains(e.Price()) {
		return false
	}
	if f.minRating != nil && e.Rating() < *f.minRating {
		return false
	}
	return true
}

// Apply returns the entries that match, keeping catalog order.
// An empty filter returns the input slice as is.
func (f Filter) Apply(entries []catalog.Entry) []catalog.Entry {
	if f.IsEmpty() {
		return entries
	}
	out := make([]catalog.Entry, 0, len(entries))
	for i := range entries {
		if f.Matches(&entries[i]) {
			out = append(out, entries[i])
		}
	}
	return out
}

// Range is an inclusive numeric range; either bound may be open.
type Range struct {
	min *float64
	max *float64
}

// NewRange validates and creates a Range. At least one bound is required.
func NewRange(lo, hi *float64) (Range, error) {
	if lo == nil && hi == nil {
		return Range{}, fmt.Errorf("at least one range bound is required")
	}
	if lo != nil && *lo < 0 {
		return Range{}, fmt.Errorf("range min must not be negative")
	}
	if lo != nil && hi != nil && *lo > *hi {
		return Range{}, fmt.Errorf("range min %v is greater than max %v", *lo, *hi)
	}
	return Range{min: lo, max: hi}, nil
}

// ParseRange parses the "min-max" form used by the storefront price selector, e.g. "25-50".
func ParseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Range{}, fmt.Errorf("price range %q must look like min-max", s)
	}
	minV, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return Range{}, fmt.Errorf("price range min: %w", err)
	}
	maxV, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return Range{}, fmt.Errorf("price range max: %w", err)
	}
	return NewRange(&minV, &maxV)
}

// Min returns the lower inclusive bound.
func (r Range) Min() *float64 { return r.min }

// Max returns the upper inclusive bound.
func (r Range) Max() *float64 { return r.max }

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	if r.min != nil && v < *r.min {
		return false
	}
	if r.max != nil && v > *r.max {
		return false
	}
	return true
}
