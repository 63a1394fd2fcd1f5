package plan

// FilterNode passes through the rows of its source that satisfy the
// predicate. Its output columns are exactly the source's.
type FilterNode struct {
	NodeID    NodeID
	Source    Node
	Predicate Expression
}

func (n *FilterNode) ID() NodeID { return n.NodeID }

func (n *FilterNode) Children() []Node { return []Node{n.Source} }

func (n *FilterNode) OutputSymbols() []Symbol { return n.Source.OutputSymbols() }

func (n *FilterNode) ReplaceChildren(children []Node) Node {
	checkChildCount(n, children, 1)
	return &FilterNode{NodeID: n.NodeID, Source: children[0], Predicate: n.Predicate}
}
