package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kailas-cloud/shopsearch/internal/db"
	"github.com/kailas-cloud/shopsearch/internal/domain"
)

// store is the consumer interface for history persistence (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetNX(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
}

// Repo keeps the recent-search list as one JSON array under a single key,
// the same shape the storefront kept in local storage.
type Repo struct {
	store store
	key   string
}

// New creates a history repository. An empty name falls back to domain.HistoryKey.
func New(s store, name string) *Repo {
	if name == "" {
		name = domain.HistoryKey
	}
	return &Repo{store: s, key: domain.KeyPrefix + name}
}

// Key returns the full storage key.
func (r *Repo) Key() string { return r.key }

// Load returns the stored list. A missing key yields an empty list.
func (r *Repo) Load(ctx context.Context) ([]string, error) {
	data, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("history GET %s: %w", r.key, err)
	}

	terms, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("history GET %s: %w", r.key, err)
	}
	return terms, nil
}

// Save replaces the stored list.
func (r *Repo) Save(ctx context.Context, terms []string) error {
	data, err := encode(terms)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("history SET %s: %w", r.key, err)
	}
	return nil
}

// SaveIfAbsent stores terms only when nothing is stored yet.
// It reports whether the write happened.
func (r *Repo) SaveIfAbsent(ctx context.Context, terms []string) (bool, error) {
	data, err := encode(terms)
	if err != nil {
		return false, err
	}
	if err := r.store.SetNX(ctx, r.key, data); err != nil {
		if errors.Is(err, db.ErrKeyExists) {
			return false, nil
		}
		return false, fmt.Errorf("history SETNX %s: %w", r.key, err)
	}
	return true, nil
}

// Delete removes the stored list.
func (r *Repo) Delete(ctx context.Context) error {
	if err := r.store.Del(ctx, r.key); err != nil {
		return fmt.Errorf("history DEL %s: %w", r.key, err)
	}
	return nil
}

func encode(terms []string) ([]byte, error) {
	if terms == nil {
		terms = []string{}
	}
	data, err := json.Marshal(terms)
	if err != nil {
		return nil, fmt.Errorf("marshal history: %w", err)
	}
	return data, nil
}

func decode(data []byte) ([]string, error) {
	var terms []string
	if err := json.Unmarshal(data, &terms); err != nil {
		return nil, fmt.Errorf("unmarshal history: %w", err)
	}
	if terms == nil {
		terms = []string{}
	}
	return terms, nil
}
