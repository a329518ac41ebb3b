package shopsearch

import (
	"github.com/kailas-cloud/shopsearch/internal/domain/catalog"
	"github.com/kailas-cloud/shopsearch/internal/domain/search/result"
	"github.com/kailas-cloud/shopsearch/internal/domain/suggestion"
)

// Product is a catalog entry. Only Name, Description and Category take part in scoring.
type Product struct {
	ID            int
	Name          string
	Description   string
	Category      string
	Price         float64
	OriginalPrice float64
	Rating        float64
	Reviews       int
	Image         string
	HoverImage    string
	Badge         string
	BadgeType     string
	InStock       bool
	Discount      int
}

// Hit is a ranked search result.
type Hit struct {
	Product Product
	Score   int

	// Set only when the search asked for highlighting.
	HighlightedName        string
	HighlightedDescription string
}

// SuggestionKind tells where a suggestion came from.
type SuggestionKind string

// Suggestion kinds.
const (
	SuggestionProduct  SuggestionKind = "product"
	SuggestionCategory SuggestionKind = "category"
	SuggestionPopular  SuggestionKind = "popular"
)

// Suggestion is a dropdown candidate. ProductID is 0 for popular searches.
type Suggestion struct {
	Text      string
	Kind      SuggestionKind
	ProductID int
}

// Category is a distinct category with its product count.
type Category struct {
	Name      string
	ItemCount int
}

func productToEntry(p Product) (catalog.Entry, error) {
	return catalog.New(p.ID, p.Name, p.Description, p.Category, catalog.Attrs{
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		Image:         p.Image,
		HoverImage:    p.HoverImage,
		Badge:         p.Badge,
		BadgeType:     p.BadgeType,
		InStock:       p.InStock,
		Discount:      p.Discount,
	})
}

func entryToProduct(e *catalog.Entry) Product {
	a := e.Attrs()
	return Product{
		ID:            e.ID(),
		Name:          e.Name(),
		Description:   e.Description(),
		Category:      e.Category(),
		Price:         a.Price,
		OriginalPrice: a.OriginalPrice,
		Rating:        a.Rating,
		Reviews:       a.Reviews,
		Image:         a.Image,
		HoverImage:    a.HoverImage,
		Badge:         a.Badge,
		BadgeType:     a.BadgeType,
		InStock:       a.InStock,
		Discount:      a.Discount,
	}
}

func entriesToProducts(entries []catalog.Entry) []Product {
	out := make([]Product, len(entries))
	for i := range entries {
		out[i] = entryToProduct(&entries[i])
	}
	return out
}

func scoredToHit(s *result.Scored) Hit {
	e := s.Entry()
	h := Hit{Product: entryToProduct(&e), Score: s.Score()}
	if hl, ok := s.Highlight(); ok {
		h.HighlightedName = hl.Name
		h.HighlightedDescription = hl.Description
	}
	return h
}

func suggestionFromDomain(s *suggestion.Suggestion) Suggestion {
	out := Suggestion{Text: s.Text(), Kind: SuggestionKind(s.Kind())}
	if src := s.Source(); src != nil {
		out.ProductID = src.ID()
	}
	return out
}
