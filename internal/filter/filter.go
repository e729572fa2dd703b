package filter

import (
	"path/filepath"
	"strings"
)

// Filter selects groups by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// MatchAny reports whether name matches at least one of the patterns
func (f *Filter) MatchAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if f.Match(name, pattern) {
			return true
		}
	}
	return false
}

// Match matches name against a wildcard pattern.
// Supports patterns like "vector*" or "*alloc*"; a pattern without wildcards
// matches any name containing it.
func (f *Filter) Match(name, pattern string) bool {
	if pattern == "" {
		return true
	}

	// Try filepath.Match first (supports * and ? wildcards)
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if strings.Contains(pattern, "*") {
		// Every non-empty part between wildcards must appear, in order
		rest := name
		found := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			idx := strings.Index(rest, part)
			if idx < 0 {
				return false
			}
			rest = rest[idx+len(part):]
			found = true
		}
		return found
	}

	// No wildcards: simple contains check
	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}

// FilterByName returns the names matching any of the patterns.
// An empty pattern list returns names unchanged.
func (f *Filter) FilterByName(names []string, patterns []string) []string {
	if len(patterns) == 0 {
		return names
	}

	var filtered []string
	for _, name := range names {
		if f.MatchAny(name, patterns) {
			filtered = append(filtered, name)
		}
	}
	return filtered
}
