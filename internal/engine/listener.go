package engine

import "snow/internal/domain"

// Listener receives traversal events in execution order. depth is 0 for
// top-level groups and grows by one per level of nesting.
type Listener interface {
	GroupEntered(group *Node, depth int)
	GroupExited(group *Node, depth int, stats domain.Summary)
	CaseStarted(c *Node, depth int)
	CaseFinished(c *Node, depth int, result domain.Result)
}

type listeners []Listener

func (ls listeners) groupEntered(group *Node, depth int) {
	for _, l := range ls {
		l.GroupEntered(group, depth)
	}
}

func (ls listeners) groupExited(group *Node, depth int, stats domain.Summary) {
	for _, l := range ls {
		l.GroupExited(group, depth, stats)
	}
}

func (ls listeners) caseStarted(c *Node, depth int) {
	for _, l := range ls {
		l.CaseStarted(c, depth)
	}
}

func (ls listeners) caseFinished(c *Node, depth int, result domain.Result) {
	for _, l := range ls {
		l.CaseFinished(c, depth, result)
	}
}
