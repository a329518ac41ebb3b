package result

import (
	"testing"

	"github.com/kailas-cloud/shopsearch/internal/domain/catalog"
)

func TestNew_Accessors(t *testing.T) {
	e := catalog.Reconstruct(7, "Gaming Mouse", "", "electronics", catalog.Attrs{})
	s := New(e, 140)
	got := s.Entry()
	if got.ID() != 7 {
		t.Errorf("entry ID = %d, want 7", got.ID())
	}
	if s.Score() != 140 {
		t.Errorf("score = %d, want 140", s.Score())
	}
}

func TestEntries_KeepsOrder(t *testing.T) {
	scored := []Scored{
		New(catalog.Reconstruct(3, "c", "", "", catalog.Attrs{}), 90),
		New(catalog.Reconstruct(1, "a", "", "", catalog.Attrs{}), 50),
	}
	entries := Entries(scored)
	if len(entries) != 2 || entries[0].ID() != 3 || entries[1].ID() != 1 {
		t.Fatalf("unexpected order: %+v", entries)
	}
	if got := Entries(nil); len(got) != 0 {
		t.Errorf("expected empty slice, got %d", len(got))
	}
}

func TestWithHighlight(t *testing.T) {
	s := New(catalog.Reconstruct(2, "Wireless Headphones", "", "", catalog.Attrs{}), 60)
	if _, ok := s.Highlight(); ok {
		t.Fatal("fresh result should carry no highlight")
	}

	h := s.WithHighlight(Highlight{Name: "Wireless <b>Head</b>phones"})
	got, ok := h.Highlight()
	if !ok || got.Name != "Wireless <b>Head</b>phones" {
		t.Errorf("highlight = %+v, %v", got, ok)
	}
	if _, ok := s.Highlight(); ok {
		t.Error("WithHighlight modified the receiver")
	}
	if h.Score() != 60 {
		t.Errorf("score changed: %d", h.Score())
	}
}
