package history

import "context"

// Repository persists the recent-search list.
type Repository interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, terms []string) error
	SaveIfAbsent(ctx context.Context, terms []string) (bool, error)
	Delete(ctx context.Context) error
}
