package ranking

import (
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/shopsearch/internal/domain/catalog"
	"github.com/kailas-cloud/shopsearch/internal/domain/suggestion"
)

// Suggestion defaults.
const (
	DefaultMaxSuggestions = 5
	// MinSuggestLength is the shortest partial query that produces suggestions.
	MinSuggestLength = 2
)

// Suggest derives autocomplete candidates from entry name tokens and categories.
// Results keep catalog iteration order, are unique by text (first occurrence
// wins) and are capped at maxSuggestions (<= 0 means DefaultMaxSuggestions).
// A name token equal to the partial query is never suggested.
func Suggest(entries []catalog.Entry, partial string, maxSuggestions int) []suggestion.Suggestion {
	if utf8.RuneCountInString(partial) < MinSuggestLength {
		return []suggestion.Suggestion{}
	}
	if maxSuggestions <= 0 {
		maxSuggestions = DefaultMaxSuggestions
	}

	term := strings.ToLower(partial)
	seen := make(map[string]struct{})
	out := make([]suggestion.Suggestion, 0, maxSuggestions)

	add := func(text string, kind suggestion.Kind, src *catalog.Entry) {
		if _, dup := seen[text]; dup {
			return
		}
		seen[text] = struct{}{}
		out = append(out, suggestion.New(text, kind, src))
	}

	for i := range entries {
		e := &entries[i]
		for _, token := range strings.Fields(strings.ToLower(e.Name())) {
			if token != term && strings.HasPrefix(token, term) {
				add(token, suggestion.Product, e)
			}
		}
		if category := e.Category(); strings.HasPrefix(strings.ToLower(category), term) {
			add(category, suggestion.Category, e)
		}
		if len(out) >= maxSuggestions {
			break
		}
	}

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// FilterPopular returns the popular searches containing partial, as popular-kind suggestions.
// An empty partial yields nothing.
func FilterPopular(popular []string, partial string) []suggestion.Suggestion {
	term := strings.ToLower(partial)
	if term == "" {
		return []suggestion.Suggestion{}
	}
	out := make([]suggestion.Suggestion, 0, len(popular))
	for _, p := range popular {
		if strings.Contains(strings.ToLower(p), term) {
			out = append(out, suggestion.New(p, suggestion.Popular, nil))
		}
	}
	return out
}

// MergeSuggestions concatenates lists in order, drops repeated texts and caps
// the result at limit (<= 0 means no cap).
func MergeSuggestions(limit int, lists ...[]suggestion.Suggestion) []suggestion.Suggestion {
	seen := make(map[string]struct{})
	var out []suggestion.Suggestion
	for _, list := range lists {
		for _, s := range list {
			if limit > 0 && len(out) >= limit {
				return out
			}
			if _, dup := seen[s.Text()]; dup {
				continue
			}
			seen[s.Text()] = struct{}{}
			out = append(out, s)
		}
	}
	if out == nil {
		out = []suggestion.Suggestion{}
	}
	return out
}
