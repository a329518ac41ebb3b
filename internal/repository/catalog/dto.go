package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	domcatalog "github.com/kailas-cloud/shopsearch/internal/domain/catalog"
)

// fileDoc is the on-disk catalog layout. JSON files decode through the same
// yaml tags since JSON is valid YAML.
type fileDoc struct {
	Products []entryRow `yaml:"products"`
}

type entryRow struct {
	ID            int     `yaml:"id"`
	Name          string  `yaml:"name"`
	Description   string  `yaml:"description"`
	Category      string  `yaml:"category"`
	Price         float64 `yaml:"price"`
	OriginalPrice float64 `yaml:"original_price"`
	Rating        float64 `yaml:"rating"`
	Reviews       int     `yaml:"reviews"`
	Image         string  `yaml:"image"`
	HoverImage    string  `yaml:"hover_image"`
	Badge         string  `yaml:"badge"`
	BadgeType     string  `yaml:"badge_type"`
	InStock       bool    `yaml:"in_stock"`
	Discount      int     `yaml:"discount"`
}

// Decode parses a catalog document and validates every entry.
func Decode(data []byte) ([]domcatalog.Entry, error) {
	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	entries := make([]domcatalog.Entry, 0, len(doc.Products))
	for i, row := range doc.Products {
		e, err := rowToEntry(row)
		if err != nil {
			return nil, fmt.Errorf("products[%d]: %w", i, err)
		}
		entries = append(entries, e)
	}
	if err := domcatalog.Validate(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Encode renders entries in the on-disk layout.
func Encode(entries []domcatalog.Entry) ([]byte, error) {
	doc := fileDoc{Products: make([]entryRow, len(entries))}
	for i := range entries {
		doc.Products[i] = entryToRow(&entries[i])
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal catalog: %w", err)
	}
	return data, nil
}

func rowToEntry(r entryRow) (domcatalog.Entry, error) {
	return domcatalog.New(r.ID, r.Name, r.Description, r.Category, domcatalog.Attrs{
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Rating:        r.Rating,
		Reviews:       r.Reviews,
		Image:         r.Image,
		HoverImage:    r.HoverImage,
		Badge:         r.Badge,
		BadgeType:     r.BadgeType,
		InStock:       r.InStock,
		Discount:      r.Discount,
	})
}

func entryToRow(e *domcatalog.Entry) entryRow {
	a := e.Attrs()
	return entryRow{
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
