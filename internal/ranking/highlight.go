package ranking

import (
	"regexp"
)

// Default highlight markers, matching the storefront's rendering.
const (
	MarkOpen  = `<mark class="bg-yellow-200 px-1 rounded">`
	MarkClose = `</mark>`
)

// Highlight wraps every case-insensitive occurrence of term in text with the
// default <mark> markers. The original casing of text is preserved.
func Highlight(text, term string) string {
	return HighlightWith(text, term, MarkOpen, MarkClose)
}

// HighlightWith is Highlight with caller-supplied markers.
// term is matched literally; empty text or term returns text unchanged.
func HighlightWith(text, term, open, closeMark string) string {
	if text == "" || term == "" {
		return text
	}
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(term))
	if err != nil {
		return text
	}
	return re.ReplaceAllStringFunc(text, func(m string) string {
		return open + m + closeMark
	})
}
