package idgen

import (
	"strings"
	"testing"
)

func TestEdge(t *testing.T) {
	id, err := Edge()
	if err != nil {
		t.Fatalf("Edge() error: %v", err)
	}
	if !strings.HasPrefix(id, EdgePrefix) {
		t.Errorf("Edge() = %q, want prefix %q", id, EdgePrefix)
	}
	if len(id) != len(EdgePrefix)+Length {
		t.Errorf("Edge() length = %d, want %d", len(id), len(EdgePrefix)+Length)
	}
}

func TestGenerateWithPrefix_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id, err := GenerateWithPrefix("x-")
		if err != nil {
			t.Fatalf("GenerateWithPrefix error: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %q", id)
		}
		seen[id] = true
	}
}
