package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing catalog entry.
	ErrNotFound = errors.New("not found")
	// ErrInvalidQuery signals malformed search or suggestion parameters.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrInvalidFilter signals a malformed attribute filter.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrCatalogUnavailable signals that no catalog snapshot has been loaded.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrInvalidCatalog signals a catalog file that failed validation.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// EntryNotFoundError wraps ErrNotFound with the requested entry ID.
type EntryNotFoundError struct {
	ID int
}

func (e *EntryNotFoundError) Error() string {
	return fmt.Sprintf("entry %d: %s", e.ID, ErrNotFound.Error())
}

func (e *EntryNotFoundError) Unwrap() error { return ErrNotFound }

// NewEntryNotFound creates a not-found error for the given entry.
func NewEntryNotFound(id int) error {
	return &EntryNotFoundError{ID: id}
}
