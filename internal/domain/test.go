package domain

import "strings"

// PathSeparator joins group names in a case's path
const PathSeparator = " > "

// CaseRecord represents a finished case and where it was declared
type CaseRecord struct {
	Path   []string // Names of the enclosing groups, outermost first
	Name   string   // Case name
	Result Result
}

// GroupPath returns the enclosing group names joined for display
func (c CaseRecord) GroupPath() string {
	return strings.Join(c.Path, PathSeparator)
}

// FullName returns the group path and the case name
func (c CaseRecord) FullName() string {
	if len(c.Path) == 0 {
		return c.Name
	}
	return c.GroupPath() + PathSeparator + c.Name
}
