package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Valid(t *testing.T) {
	e, err := New(1, "Yoga Mat", "", "", Attrs{Price: 10, Rating: 4})
	require.NoError(t, err)
	assert.Equal(t, 1, e.ID())
	assert.Equal(t, "Yoga Mat", e.Name())
	assert.Empty(t, e.Description())
	assert.Empty(t, e.Category())
	assert.InDelta(t, 10.0, e.Price(), 1e-9)
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		entName string
		attrs   Attrs
		wantErr string
	}{
		{"zero id", 0, "x", Attrs{}, "positive"},
		{"negative id", -3, "x", Attrs{}, "positive"},
		{"blank name", 1, "   ", Attrs{}, "name is required"},
		{"long name", 1, strings.Repeat("a", MaxNameLength+1), Attrs{}, "too long"},
		{"negative price", 1, "x", Attrs{Price: -1}, "price"},
		{"rating above 5", 1, "x", Attrs{Rating: 5.5}, "rating"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.id, tt.entName, "", "", tt.attrs)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCategories_FirstSeenOrderWithCounts(t *testing.T) {
	got := Categories(Sample())
	want := []Category{
		{Name: "fashion", ItemCount: 2},
		{Name: "electronics", ItemCount: 3},
		{Name: "sports", ItemCount: 2},
		{Name: "jewelry", ItemCount: 1},
	}
	assert.Equal(t, want, got)
}

func TestCategories_SkipsEmpty(t *testing.T) {
	entries := []Entry{Reconstruct(1, "a", "", "", Attrs{})}
	assert.Empty(t, Categories(entries))
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(Sample()))

	dup := append(Sample(), Reconstruct(3, "Copy", "", "", Attrs{}))
	err := Validate(dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate entry ID 3")
}
