package plan

// ValuesNode produces a constant relation, one expression per column per row.
type ValuesNode struct {
	NodeID  NodeID
	Columns []Symbol
	Rows    [][]Expression
}

func (n *ValuesNode) ID() NodeID { return n.NodeID }

func (n *ValuesNode) Children() []Node { return nil }

func (n *ValuesNode) OutputSymbols() []Symbol { return n.Columns }

func (n *ValuesNode) ReplaceChildren(children []Node) Node {
	checkChildCount(n, children, 0)
	return n
}
