package history

import (
	"context"
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/shopsearch/internal/domain"
)

// Service tracks recent search terms. Storage failures never reach the
// caller: reads degrade to an empty list and writes are dropped, both logged.
type Service struct {
	repo        Repository
	limit       int
	errorsTotal *prometheus.CounterVec
	logger      *zap.Logger
}

// New creates a Service keeping at most domain.MaxHistory terms.
func New(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, limit: domain.MaxHistory, logger: logger}
}

// WithLimit overrides the list cap. Values <= 0 are ignored.
func (s *Service) WithLimit(n int) *Service {
	if n > 0 {
		s.limit = n
	}
	return s
}

// WithErrorCounter sets a counter vec with label "op", incremented on absorbed failures.
func (s *Service) WithErrorCounter(c *prometheus.CounterVec) *Service {
	s.errorsTotal = c
	return s
}

// Get returns the stored terms, most recent first.
func (s *Service) Get(ctx context.Context) []string {
	terms, err := s.repo.Load(ctx)
	if err != nil {
		s.fail("load", err)
		return []string{}
	}
	return terms
}

// Add moves term to the front of the list, dropping an earlier occurrence and
// anything past the cap, and returns the new list. A blank term leaves the
// list untouched. A failed write returns an empty list.
func (s *Service) Add(ctx context.Context, term string) []string {
	term = strings.TrimSpace(term)
	current := s.Get(ctx)
	if term == "" {
		return current
	}

	// Stored lists may come from elsewhere, so every repeat is dropped.
	seen := map[string]struct{}{term: {}}
	next := make([]string, 0, min(len(current)+1, s.limit))
	next = append(next, term)
	for _, t := range current {
		if len(next) == s.limit {
			break
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		next = append(next, t)
	}

	if err := s.repo.Save(ctx, next); err != nil {
		s.fail("save", err)
		return []string{}
	}
	return next
}

// Clear removes all terms.
func (s *Service) Clear(ctx context.Context) {
	if err := s.repo.Delete(ctx); err != nil {
		s.fail("delete", err)
	}
}

// Seed stores terms when no history exists yet and reports whether it did.
func (s *Service) Seed(ctx context.Context, terms []string) bool {
	if len(terms) == 0 {
		return false
	}
	if len(terms) > s.limit {
		terms = terms[:s.limit]
	}
	ok, err := s.repo.SaveIfAbsent(ctx, slices.Clone(terms))
	if err != nil {
		s.fail("seed", err)
		return false
	}
	if ok {
		s.logger.Info("history seeded", zap.Int("terms", len(terms)))
	}
	return ok
}

func (s *Service) fail(op string, err error) {
	if s.errorsTotal != nil {
		s.errorsTotal.WithLabelValues(op).Inc()
	}
	s.logger.Warn("history storage failed",
		zap.String("op", op),
		zap.Error(err),
	)
}
