package engine

import "snow/internal/filter"

// Suite holds the top-level groups in declaration order
type Suite struct {
	roots  []*Node
	filter *filter.Filter
}

// NewSuite creates an empty Suite
func NewSuite() *Suite {
	return &Suite{filter: filter.NewFilter()}
}

// Describe declares a top-level group. body runs before Describe returns, so
// the group is fully populated by the time anything can execute it.
func (s *Suite) Describe(name string, body func(g *Group)) {
	s.roots = append(s.roots, declareGroup(name, body))
}

// Roots returns the top-level groups
func (s *Suite) Roots() []*Node {
	return s.roots
}

// Cases returns the number of declared cases
func (s *Suite) Cases() int {
	return CountCases(s.roots)
}

// Select returns the top-level groups whose name matches any of the patterns.
// No patterns selects everything.
func (s *Suite) Select(patterns []string) []*Node {
	if len(patterns) == 0 {
		return s.roots
	}
	var selected []*Node
	for _, root := range s.roots {
		if s.filter.MatchAny(root.Name, patterns) {
			selected = append(selected, root)
		}
	}
	return selected
}

// CountCases returns the number of leaf cases in the given trees
func CountCases(roots []*Node) int {
	total := 0
	for _, root := range roots {
		total += root.Cases()
	}
	return total
}
