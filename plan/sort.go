package plan

// SortNode orders its source's rows. Output columns are the source's.
type SortNode struct {
	NodeID   NodeID
	Source   Node
	Ordering Ordering
}

func (n *SortNode) ID() NodeID { return n.NodeID }

func (n *SortNode) Children() []Node { return []Node{n.Source} }

func (n *SortNode) OutputSymbols() []Symbol { return n.Source.OutputSymbols() }

func (n *SortNode) ReplaceChildren(children []Node) Node {
	checkChildCount(n, children, 1)
	return &SortNode{NodeID: n.NodeID, Source: children[0], Ordering: n.Ordering}
}
