package engine

// Kind distinguishes groups from cases
type Kind int

const (
	KindGroup Kind = iota
	KindCase
)

func (k Kind) String() string {
	if k == KindGroup {
		return "group"
	}
	return "case"
}

// Node is a declared group or case. The tree is read-only once declaration
// has finished.
type Node struct {
	Name     string
	Kind     Kind
	Children []*Node // groups only, in declaration order

	body func(t *T)
}

// Cases returns the number of leaf cases at or below n
func (n *Node) Cases() int {
	if n.Kind == KindCase {
		return 1
	}
	total := 0
	for _, child := range n.Children {
		total += child.Cases()
	}
	return total
}

// Group is the declaration context handed to a group body. Children declared
// through it are appended to that group.
type Group struct {
	node *Node
}

// Name returns the group's declared name
func (g *Group) Name() string {
	return g.node.Name
}

// Describe declares a nested group and evaluates body immediately.
func (g *Group) Describe(name string, body func(g *Group)) {
	g.node.Children = append(g.node.Children, declareGroup(name, body))
}

// It declares a case. The body runs later, when the engine reaches it.
func (g *Group) It(name string, body func(t *T)) {
	g.node.Children = append(g.node.Children, &Node{
		Name: name,
		Kind: KindCase,
		body: body,
	})
}

// Test is an alias for It.
func (g *Group) Test(name string, body func(t *T)) {
	g.It(name, body)
}

func declareGroup(name string, body func(g *Group)) *Node {
	node := &Node{Name: name, Kind: KindGroup}
	if body != nil {
		body(&Group{node: node})
	}
	return node
}
