package plan

// JoinType enumerates the supported join variants.
type JoinType string

const (
	InnerJoin JoinType = "inner"
	LeftJoin  JoinType = "left"
	RightJoin JoinType = "right"
	FullJoin  JoinType = "full"
	CrossJoin JoinType = "cross"
)

// EquiClause is one left = right conjunct of the join criteria.
type EquiClause struct {
	Left  Symbol
	Right Symbol
}

// JoinNode joins two sources. The output is the concatenation of the left
// and right outputs; column pruning is a separate rule's concern.
type JoinNode struct {
	NodeID   NodeID
	Type     JoinType
	Left     Node
	Right    Node
	Criteria []EquiClause
}

func (n *JoinNode) ID() NodeID { return n.NodeID }

func (n *JoinNode) Children() []Node { return []Node{n.Left, n.Right} }

func (n *JoinNode) OutputSymbols() []Symbol {
	left := n.Left.OutputSymbols()
	right := n.Right.OutputSymbols()
	out := make([]Symbol, 0, len(left)+len(right))
	out = append(out, left...)
	return append(out, right...)
}

func (n *JoinNode) ReplaceChildren(children []Node) Node {
	checkChildCount(n, children, 2)
	return &JoinNode{
		NodeID:   n.NodeID,
		Type:     n.Type,
		Left:     children[0],
		Right:    children[1],
		Criteria: n.Criteria,
	}
}
