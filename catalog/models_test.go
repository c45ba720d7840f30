package catalog

import (
	"math"
	"testing"
)

func TestNewBookDefaults(t *testing.T) {
	b, err := NewBook("Dune", "Herbert", 1965)
	if err != nil {
		t.Fatalf("new book: %v", err)
	}
	if b.Title != "Dune" || b.Author != "Herbert" || b.Year != 1965 {
		t.Fatalf("fields not stored: %+v", b)
	}
	if b.Status != StatusAvailable {
		t.Fatalf("want default status %q, got %q", StatusAvailable, b.Status)
	}
}

func TestNewBookIDFits32Bits(t *testing.T) {
	for i := 0; i < 50; i++ {
		b, err := NewBook("T", "A", 2000)
		if err != nil {
			t.Fatalf("new book: %v", err)
		}
		if b.ID > math.MaxUint32 {
			t.Fatalf("id %d wider than 32 bits", b.ID)
		}
	}
}

func TestNewBookIDsDistinct(t *testing.T) {
	seen := make(map[uint64]bool)
	for i := 0; i < 200; i++ {
		b, err := NewBook("T", "A", 2000)
		if err != nil {
			t.Fatalf("new book: %v", err)
		}
		if seen[b.ID] {
			t.Fatalf("duplicate id %d after %d books", b.ID, i)
		}
		seen[b.ID] = true
	}
}

func TestStatusValid(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusAvailable, true},
		{StatusCheckedOut, true},
		{"", false},
		{"lost", false},
		{"available", false}, // only the stored literals are valid
	}
	for _, tt := range tests {
		if got := tt.status.Valid(); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
