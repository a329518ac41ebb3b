package suggestion

import "github.com/kailas-cloud/shopsearch/internal/domain/catalog"

// Kind tells where a suggestion came from.
type Kind string

// Suggestion kinds.
const (
	Product  Kind = "product"
	Category Kind = "category"
	Popular  Kind = "popular"
)

// IsValid checks if the kind is one of the supported values.
func (k Kind) IsValid() bool {
	return k == Product || k == Category || k == Popular
}

// Suggestion is an autocomplete candidate.
type Suggestion struct {
	text   string
	kind   Kind
	source *catalog.Entry
}

// New creates a suggestion. source is nil for popular searches.
func New(text string, kind Kind, source *catalog.Entry) Suggestion {
	return Suggestion{text: text, kind: kind, source: source}
}

// Text returns the suggested query text.
func (s *Suggestion) Text() string { return s.text }

// Kind returns the suggestion origin.
func (s *Suggestion) Kind() Kind { return s.kind }

// Source returns the entry the suggestion was derived from, or nil.
func (s *Suggestion) Source() *catalog.Entry { return s.source }
