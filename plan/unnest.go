package plan

// UnnestNode expands collection-valued columns into rows. Replicate lists
// the source columns copied onto every produced row; Unnested lists the
// symbols created for the expanded elements.
type UnnestNode struct {
	NodeID    NodeID
	Source    Node
	Replicate []Symbol
	Unnested  []Symbol
}

func (n *UnnestNode) ID() NodeID { return n.NodeID }

func (n *UnnestNode) Children() []Node { return []Node{n.Source} }

func (n *UnnestNode) OutputSymbols() []Symbol {
	out := make([]Symbol, 0, len(n.Replicate)+len(n.Unnested))
	out = append(out, n.Replicate...)
	return append(out, n.Unnested...)
}

func (n *UnnestNode) ReplaceChildren(children []Node) Node {
	checkChildCount(n, children, 1)
	return &UnnestNode{
		NodeID:    n.NodeID,
		Source:    children[0],
		Replicate: n.Replicate,
		Unnested:  n.Unnested,
	}
}
