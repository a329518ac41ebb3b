package ranking

import (
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/shopsearch/internal/domain/catalog"
)

// Scoring weights. Rules are additive: an entry collects every bonus it satisfies.
const (
	exactNameBonus    = 100
	namePrefixBonus   = 80
	nameContainsBonus = 60
	descContainsBonus = 40
	categoryBonus     = 30

	// Fuzzy token matching applies to tokens of at least fuzzyMinTokenLen runes
	// within fuzzyMaxDistance edits of the query.
	fuzzyMinTokenLen = 4
	fuzzyMaxDistance = 2
	nameFuzzyBase    = 20
	nameFuzzyStep    = 5
	descFuzzyBase    = 10
	descFuzzyStep    = 3
)

// Score returns the relevance of e for query. Matching is case-insensitive;
// the query is expected to be trimmed.
func Score(e catalog.Entry, query string) int {
	return score(&e, strings.ToLower(query))
}

func score(e *catalog.Entry, term string) int {
	name := strings.ToLower(e.Name())
	desc := strings.ToLower(e.Description())
	category := strings.ToLower(e.Category())

	total := 0
	if name == term {
		total += exactNameBonus
	}
	if strings.HasPrefix(name, term) {
		total += namePrefixBonus
	}
	if strings.Contains(name, term) {
		total += nameContainsBonus
	}
	if strings.Contains(desc, term) {
		total += descContainsBonus
	}
	if strings.Contains(category, term) {
		total += categoryBonus
	}

	total += fuzzyTokens(name, term, nameFuzzyBase, nameFuzzyStep)
	total += fuzzyTokens(desc, term, descFuzzyBase, descFuzzyStep)
	return total
}

// fuzzyTokens sums base-step*d over every qualifying token. The sum is not capped.
func fuzzyTokens(text, term string, base, step int) int {
	total := 0
	for _, token := range strings.Fields(text) {
		if utf8.RuneCountInString(token) < fuzzyMinTokenLen {
			continue
		}
		d := Distance(token, term)
		if d <= fuzzyMaxDistance {
			total += max(0, base-step*d)
		}
	}
	return total
}
