package ranking

import (
	"strings"
	"testing"

	"github.com/kailas-cloud/shopsearch/internal/domain/catalog"
)

func entry(id int, name, desc, category string) catalog.Entry {
	return catalog.Reconstruct(id, name, desc, category, catalog.Attrs{})
}

func TestScore_Rules(t *testing.T) {
	tests := []struct {
		name  string
		e     catalog.Entry
		query string
		want  int
	}{
		// three-rune name is too short for the fuzzy pass
		{"exact short name", entry(1, "Mat", "", ""), "mat", 100 + 80 + 60},
		{"prefix", entry(1, "Yoga Mat", "", ""), "yoga", 80 + 60 + 20},
		{"name substring", entry(1, "Big Lamp", "", ""), "lam", 60 + 15},
		{"description only", entry(1, "Lamp", "a bright lamp", ""), "bright", 40 + 10},
		{"category only", entry(1, "Lamp", "", "electronics"), "electr", 30},
		{"no match", entry(1, "Lamp", "desk light", "home"), "zebra", 0},
		// name token "shirt" d=1 -> 15, description token "shirt" d=1 -> 7
		{"fuzzy name and description", entry(1, "Casual Shirt", "cotton shirt", ""), "shrt", 22},
		// d=2 -> 20-10 on name
		{"fuzzy distance two", entry(1, "Smart Watch", "", ""), "shirt", 10},
		// tokens shorter than four runes are ignored by the fuzzy pass
		{"short tokens skipped", entry(1, "Cap", "", ""), "cat", 0},
		{"empty fields", entry(1, "Lamp", "", ""), "desk", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.e, tt.query); got != tt.want {
				t.Errorf("Score(%q, %q) = %d, want %d", tt.e.Name(), tt.query, got, tt.want)
			}
		})
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	e := entry(1, "Wireless Headphones", "", "")
	if a, b := Score(e, "wireless"), Score(e, "WIRELESS"); a != b {
		t.Errorf("case changed score: %d vs %d", a, b)
	}
}

func TestScore_ExactNameAtLeast100(t *testing.T) {
	for _, e := range catalog.Sample() {
		if got := Score(e, e.Name()); got < 100 {
			t.Errorf("Score(%q, own name) = %d, want >= 100", e.Name(), got)
		}
		if got := Score(e, strings.ToUpper(e.Name())); got < 100 {
			t.Errorf("Score(%q, upper name) = %d, want >= 100", e.Name(), got)
		}
	}
}

func TestScore_NonNegative(t *testing.T) {
	for _, e := range catalog.Sample() {
		for _, q := range []string{"a", "zzzz", "watch", "perfect"} {
			if got := Score(e, q); got < 0 {
				t.Errorf("Score(%q, %q) = %d", e.Name(), q, got)
			}
		}
	}
}

// The fuzzy bonus is summed per token without a cap, so many near-miss tokens
// can outscore an exact name match.
func TestScore_FuzzyBonusIsUncapped(t *testing.T) {
	exact := entry(1, "test", "", "")
	noisy := entry(2, strings.Repeat("tent ", 20), "", "")

	exactScore := Score(exact, "test") // 100 + 80 + 60 + 20
	noisyScore := Score(noisy, "test") // 20 tokens * 15
	if exactScore != 260 {
		t.Fatalf("exact score = %d, want 260", exactScore)
	}
	if noisyScore != 300 {
		t.Fatalf("noisy score = %d, want 300", noisyScore)
	}
}
