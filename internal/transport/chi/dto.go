package chi

import (
	"github.com/kailas-cloud/shopsearch/internal/domain/catalog"
	"github.com/kailas-cloud/shopsearch/internal/domain/search/result"
	"github.com/kailas-cloud/shopsearch/internal/domain/suggestion"
)

// envelope is the response shape the storefront frontend expects.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Error   string `json:"error,omitempty"`
}

type productDTO struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
	Image         string  `json:"image,omitempty"`
	HoverImage    string  `json:"hoverImage,omitempty"`
	Badge         string  `json:"badge,omitempty"`
	BadgeType     string  `json:"badgeType,omitempty"`
	InStock       bool    `json:"inStock"`
	Discount      int     `json:"discount,omitempty"`
}

type searchHitDTO struct {
	productDTO
	Score     int           `json:"score"`
	Highlight *highlightDTO `json:"highlight,omitempty"`
}

type highlightDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type suggestionDTO struct {
	Text      string `json:"text"`
	Kind      string `json:"kind"`
	ProductID *int   `json:"productId,omitempty"`
}

type categoryDTO struct {
	Name      string `json:"name"`
	ItemCount int    `json:"itemCount"`
}

type historyRequest struct {
	Term string `json:"term"`
}

type healthDTO struct {
	Status         string            `json:"status"`
	Checks         map[string]string `json:"checks"`
	CatalogEntries int               `json:"catalogEntries"`
}

func productToDTO(e *catalog.Entry) productDTO {
	a := e.Attrs()
	return productDTO{
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

func productsToDTO(entries []catalog.Entry) []productDTO {
	out := make([]productDTO, len(entries))
	for i := range entries {
		out[i] = productToDTO(&entries[i])
	}
	return out
}

func hitsToDTO(scored []result.Scored) []searchHitDTO {
	out := make([]searchHitDTO, len(scored))
	for i := range scored {
		e := scored[i].Entry()
		out[i] = searchHitDTO{productDTO: productToDTO(&e), Score: scored[i].Score()}
		if h, ok := scored[i].Highlight(); ok {
			out[i].Highlight = &highlightDTO{Name: h.Name, Description: h.Description}
		}
	}
	return out
}

func suggestionsToDTO(items []suggestion.Suggestion) []suggestionDTO {
	out := make([]suggestionDTO, len(items))
	for i := range items {
		out[i] = suggestionDTO{Text: items[i].Text(), Kind: string(items[i].Kind())}
		if src := items[i].Source(); src != nil {
			id := src.ID()
			out[i].ProductID = &id
		}
	}
	return out
}

func categoriesToDTO(cats []catalog.Category) []categoryDTO {
	out := make([]categoryDTO, len(cats))
	for i, c := range cats {
		out[i] = categoryDTO{Name: c.Name, ItemCount: c.ItemCount}
	}
	return out
}
