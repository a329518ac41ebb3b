package shopsearch

import (
	"time"

	"github.com/kailas-cloud/shopsearch/internal/debounce"
	"github.com/kailas-cloud/shopsearch/internal/ranking"
)

// Distance returns the Levenshtein edit distance between a and b, counted in runes.
func Distance(a, b string) int { return ranking.Distance(a, b) }

// HighlightText wraps every case-insensitive occurrence of term in text with
// open and closeMark. term is matched literally.
func HighlightText(text, term, open, closeMark string) string {
	return ranking.HighlightWith(text, term, open, closeMark)
}

// Debounce returns a function that delays fn until wait has passed without
// another call; only the last argument of a burst is delivered.
func Debounce[T any](fn func(T), wait time.Duration) func(T) {
	return debounce.Func(fn, wait)
}
