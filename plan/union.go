package plan

// UnionNode concatenates the rows of its sources. Outputs declares the
// node's columns; Inputs[i] lists, per source, the source symbol feeding
// each output, in output order.
type UnionNode struct {
	NodeID  NodeID
	Sources []Node
	Outputs []Symbol
	Inputs  [][]Symbol
}

func (n *UnionNode) ID() NodeID { return n.NodeID }

func (n *UnionNode) Children() []Node { return n.Sources }

func (n *UnionNode) OutputSymbols() []Symbol { return n.Outputs }

func (n *UnionNode) ReplaceChildren(children []Node) Node {
	checkChildCount(n, children, len(n.Sources))
	return &UnionNode{
		NodeID:  n.NodeID,
		Sources: children,
		Outputs: n.Outputs,
		Inputs:  n.Inputs,
	}
}
