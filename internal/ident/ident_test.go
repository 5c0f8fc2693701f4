package ident_test

import (
	"strings"
	"testing"

	"github.com/plateful/foodlog/internal/ident"
)

func TestNewCarriesPrefix(t *testing.T) {
	t.Parallel()
	id := ident.New("log")
	if !strings.HasPrefix(id, "log_") {
		t.Fatalf("expected log_ prefix, got %q", id)
	}
	if parts := strings.Split(id, "_"); len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		t.Fatalf("unexpected id shape %q", id)
	}
}

func TestNewIsUniqueUnderRapidCalls(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		id := ident.New("log")
		if seen[id] {
			t.Fatalf("duplicate id %q after %d calls", id, i)
		}
		seen[id] = true
	}
}
