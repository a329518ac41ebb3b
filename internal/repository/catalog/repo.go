package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync/atomic"
	"time"

	"github.com/kailas-cloud/shopsearch/internal/domain"
	domcatalog "github.com/kailas-cloud/shopsearch/internal/domain/catalog"
)

// snapshot is an immutable catalog version. Readers hold on to one snapshot
// for the duration of a request; reloads publish a new one.
type snapshot struct {
	entries  []domcatalog.Entry
	byID     map[int]int
	loadedAt time.Time
}

// Repo serves the active catalog snapshot.
type Repo struct {
	current atomic.Pointer[snapshot]
}

// New creates an empty repository. Reads fail with ErrCatalogUnavailable
// until Replace or LoadFile succeeds.
func New() *Repo {
	return &Repo{}
}

// LoadFile reads, validates and publishes a catalog file.
func (r *Repo) LoadFile(path string) error {
	entries, err := ReadFile(path)
	if err != nil {
		return err
	}
	return r.Replace(entries)
}

// Replace validates and publishes entries as the new catalog.
func (r *Repo) Replace(entries []domcatalog.Entry) error {
	if err := domcatalog.Validate(entries); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
	}

	snap := &snapshot{
		entries:  slices.Clone(entries),
		byID:     make(map[int]int, len(entries)),
		loadedAt: time.Now(),
	}
	for i := range snap.entries {
		snap.byID[snap.entries[i].ID()] = i
	}
	r.current.Store(snap)
	return nil
}

// All returns every entry in catalog order.
func (r *Repo) All(_ context.Context) ([]domcatalog.Entry, error) {
	snap, err := r.snapshot()
	if err != nil {
		return nil, err
	}
	return slices.Clone(snap.entries), nil
}

// Get returns the entry with the given ID.
func (r *Repo) Get(_ context.Context, id int) (domcatalog.Entry, error) {
	snap, err := r.snapshot()
	if err != nil {
		return domcatalog.Entry{}, err
	}
	i, ok := snap.byID[id]
	if !ok {
		return domcatalog.Entry{}, domain.NewEntryNotFound(id)
	}
	return snap.entries[i], nil
}

// ByCategory returns the entries whose category equals category, in catalog order.
func (r *Repo) ByCategory(_ context.Context, category string) ([]domcatalog.Entry, error) {
	snap, err := r.snapshot()
	if err != nil {
		return nil, err
	}
	out := make([]domcatalog.Entry, 0)
	for i := range snap.entries {
		if snap.entries[i].Category() == category {
			out = append(out, snap.entries[i])
		}
	}
	return out, nil
}

// Len returns the number of entries in the active snapshot (0 when none).
func (r *Repo) Len() int {
	if snap := r.current.Load(); snap != nil {
		return len(snap.entries)
	}
	return 0
}

// LoadedAt returns when the active snapshot was published.
func (r *Repo) LoadedAt() (time.Time, bool) {
	if snap := r.current.Load(); snap != nil {
		return snap.loadedAt, true
	}
	return time.Time{}, false
}

func (r *Repo) snapshot() (*snapshot, error) {
	snap := r.current.Load()
	if snap == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	return snap, nil
}

// ReadFile reads and decodes a catalog file.
func ReadFile(path string) ([]domcatalog.Entry, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	entries, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidCatalog, path, err)
	}
	return entries, nil
}
