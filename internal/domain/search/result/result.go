package result

import "github.com/kailas-cloud/shopsearch/internal/domain/catalog"

// Scored pairs a catalog entry with its relevance score for one query.
type Scored struct {
	entry     catalog.Entry
	score     int
	highlight *Highlight
}

// Highlight is the entry's display text with query matches marked up.
type Highlight struct {
	Name        string
	Description string
}

// New creates a scored entry.
func New(entry catalog.Entry, score int) Scored {
	return Scored{entry: entry, score: score}
}

// Entry returns the catalog entry.
func (s *Scored) Entry() catalog.Entry { return s.entry }

// Score returns the relevance score.
func (s *Scored) Score() int { return s.score }

// WithHighlight returns a copy carrying marked-up display text.
func (s Scored) WithHighlight(h Highlight) Scored {
	s.highlight = &h
	return s
}

// Highlight returns the marked-up display text, if any was attached.
func (s *Scored) Highlight() (Highlight, bool) {
	if s.highlight == nil {
		return Highlight{}, false
	}
	return *s.highlight, true
}

// Entries unwraps scored results into plain entries, keeping order.
func Entries(scored []Scored) []catalog.Entry {
	out := make([]catalog.Entry, len(scored))
	for i := range scored {
		out[i] = scored[i].entry
	}
	return out
}
