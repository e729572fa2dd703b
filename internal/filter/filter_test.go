package filter

import (
	"testing"
)

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		groups   []string
		patterns []string
		expected int // Expected number of matches
	}{
		{
			name:     "no patterns returns all",
			groups:   []string{"vector", "map", "string"},
			patterns: nil,
			expected: 3,
		},
		{
			name:     "exact name",
			groups:   []string{"vector", "map", "string"},
			patterns: []string{"map"},
			expected: 1,
		},
		{
			name:     "wildcard pattern matches prefix",
			groups:   []string{"vector", "vector_alloc", "map"},
			patterns: []string{"vector*"},
			expected: 2,
		},
		{
			name:     "wildcard pattern matches substring",
			groups:   []string{"alloc", "vector_alloc", "map", "alloc_free"},
			patterns: []string{"*alloc*"},
			expected: 3,
		},
		{
			name:     "simple contains match",
			groups:   []string{"commandline", "asserts"},
			patterns: []string{"command"},
			expected: 1,
		},
		{
			name:     "several patterns",
			groups:   []string{"commandline", "asserts", "map"},
			patterns: []string{"asserts", "map"},
			expected: 2,
		},
		{
			name:     "no matches",
			groups:   []string{"vector", "map"},
			patterns: []string{"*nonexistent*"},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(tt.groups, tt.patterns)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d (%v)", tt.expected, len(result), result)
			}
		})
	}
}

func TestFilter_Match_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty group list", func(t *testing.T) {
		result := filter.FilterByName([]string{}, []string{"*"})
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d items", len(result))
		}
	})

	t.Run("parts must appear in order", func(t *testing.T) {
		if filter.Match("free_alloc", "*alloc*free*") {
			t.Error("expected out-of-order parts not to match")
		}
		if !filter.Match("alloc_then_free", "*alloc*free*") {
			t.Error("expected in-order parts to match")
		}
	})

	t.Run("question mark matches one character", func(t *testing.T) {
		if !filter.Match("map", "ma?") {
			t.Error("expected ma? to match map")
		}
		if filter.Match("maps", "ma?") {
			t.Error("expected ma? not to match maps")
		}
	})
}
