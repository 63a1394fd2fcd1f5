package plan

// LimitNode truncates its source to at most Count rows.
type LimitNode struct {
	NodeID NodeID
	Source Node
	Count  int64
}

func (n *LimitNode) ID() NodeID { return n.NodeID }

func (n *LimitNode) Children() []Node { return []Node{n.Source} }

func (n *LimitNode) OutputSymbols() []Symbol { return n.Source.OutputSymbols() }

func (n *LimitNode) ReplaceChildren(children []Node) Node {
	checkChildCount(n, children, 1)
	return &LimitNode{NodeID: n.NodeID, Source: children[0], Count: n.Count}
}
