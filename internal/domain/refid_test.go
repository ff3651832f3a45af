package domain

import (
	"strings"
	"testing"
)

func TestNewRefIDs_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		gen    func() string
		prefix string
	}{
		{"roadmap", NewRoadmapRefID, "RM-"},
		{"requirement", NewRequirementRefID, "REQ-"},
		{"idea", NewIdeaRefID, "IDEA-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id := tt.gen()
			if !strings.HasPrefix(id, tt.prefix) {
				t.Errorf("expected prefix %q, got %q", tt.prefix, id)
			}
			if id != strings.ToUpper(id) {
				t.Errorf("expected uppercase, got %q", id)
			}
			parts := strings.Split(id, "-")
			if len(parts) != 3 {
				t.Fatalf("expected 3 segments, got %q", id)
			}
			if len(parts[2]) != refIDRandomChars {
				t.Errorf("expected %d random chars, got %q", refIDRandomChars, parts[2])
			}
		})
	}
}

func TestNewRefIDs_PracticallyCollisionFree(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		id := NewIdeaRefID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate display ID generated: %s", id)
		}
		seen[id] = struct{}{}
	}
}
