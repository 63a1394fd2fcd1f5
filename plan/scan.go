package plan

// ScanNode reads a table, producing one symbol per projected column.
type ScanNode struct {
	NodeID  NodeID
	Table   string
	Columns []Symbol
}

func (n *ScanNode) ID() NodeID { return n.NodeID }

func (n *ScanNode) Children() []Node { return nil }

func (n *ScanNode) OutputSymbols() []Symbol { return n.Columns }

func (n *ScanNode) ReplaceChildren(children []Node) Node {
	checkChildCount(n, children, 0)
	return n
}
