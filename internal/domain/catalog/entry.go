package catalog

import (
	"fmt"
	"strings"
)

// MaxNameLength is the maximum entry name length in bytes.
const MaxNameLength = 256

// Attrs holds the presentational fields of an entry. None of them take part in scoring.
type Attrs struct {
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

// Entry is a catalog record (immutable value object).
type Entry struct {
	id          int
	name        string
	description string
	category    string
	attrs       Attrs
}

// New validates and creates an Entry.
// ID must be positive, name non-empty and at most MaxNameLength bytes.
// Description and category may be empty.
func New(id int, name, description, category string, attrs Attrs) (Entry, error) {
	if id <= 0 {
		return Entry{}, fmt.Errorf("entry ID must be positive, got %d", id)
	}
	if strings.TrimSpace(name) == "" {
		return Entry{}, fmt.Errorf("entry %d: name is required", id)
	}
	if len(name) > MaxNameLength {
		return Entry{}, fmt.Errorf("entry %d: name too long (max %d)", id, MaxNameLength)
	}
	if attrs.Price < 0 {
		return Entry{}, fmt.Errorf("entry %d: price must not be negative", id)
	}
	if attrs.Rating < 0 || attrs.Rating > 5 {
		return Entry{}, fmt.Errorf("entry %d: rating must be between 0 and 5", id)
	}

	return Entry{
		id:          id,
		name:        name,
		description: description,
		category:    category,
		attrs:       attrs,
	}, nil
}

// Reconstruct creates an Entry without validation (test fixtures, trusted sources).
func Reconstruct(id int, name, description, category string, attrs Attrs) Entry {
	return Entry{id: id, name: name, description: description, category: category, attrs: attrs}
}

// ID returns the entry identifier.
func (e *Entry) ID() int { return e.id }

// Name returns the display name.
func (e *Entry) Name() string { return e.name }

// Description returns the free-text description.
func (e *Entry) Description() string { return e.description }

// Category returns the short category label.
func (e *Entry) Category() string { return e.category }

// Attrs returns the presentational fields.
func (e *Entry) Attrs() Attrs { return e.attrs }

// Price returns the current price.
func (e *Entry) Price() float64 { return e.attrs.Price }

// Rating returns the average rating.
func (e *Entry) Rating() float64 { return e.attrs.Rating }

// Category is a distinct category label with the number of entries carrying it.
type Category struct {
	Name      string
	ItemCount int
}

// Categories returns the distinct categories of entries in first-seen order.
func Categories(entries []Entry) []Category {
	index := make(map[string]int)
	var out []Category
	for i := range entries {
		c := entries[i].Category()
		if c == "" {
			continue
		}
		if pos, ok := index[c]; ok {
			out[pos].ItemCount++
			continue
		}
		index[c] = len(out)
		out = append(out, Category{Name: c, ItemCount: 1})
	}
	return out
}

// Validate checks that IDs are unique across entries.
func Validate(entries []Entry) error {
	seen := make(map[int]struct{}, len(entries))
	for i := range entries {
		id := entries[i].ID()
		if _, dup := seen[id]; dup {
			return fmt.Errorf("duplicate entry ID %d", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
