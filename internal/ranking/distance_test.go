package ranking

import "testing"

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"shirt", "shirt", 0},
		{"shirt", "shrt", 1},  // deletion
		{"shrt", "shirt", 1},  // insertion
		{"shirt", "shirk", 1}, // substitution
		{"smart", "shirt", 2},
		{"watch", "with", 2},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"café", "cafe", 1}, // runes, not bytes
		{"ü", "", 1},
	}
	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDistance_Identity(t *testing.T) {
	for _, s := range []string{"", "a", "wireless", "rose gold earrings", "日本語"} {
		if d := Distance(s, s); d != 0 {
			t.Errorf("Distance(%q, %q) = %d, want 0", s, s, d)
		}
	}
}

func TestDistance_EmptyIsLength(t *testing.T) {
	for _, s := range []string{"a", "headphones", "naïve"} {
		want := len([]rune(s))
		if d := Distance("", s); d != want {
			t.Errorf("Distance(\"\", %q) = %d, want %d", s, d, want)
		}
	}
}

func BenchmarkDistance(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Distance("cancellation", "cancelation")
	}
}
