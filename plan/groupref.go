package plan

import "fmt"

// GroupID identifies a memo group. Group 0 is reserved as invalid so that a
// zero value never silently aliases a real group.
type GroupID int32

// GroupReference stands in for "the current best representative of group
// G". The driver substitutes these for the children of memoized nodes; rules
// that need to inspect a child resolve the reference through a Lookup
// instead of assuming a materialized node.
//
// The reference carries the group's output symbols so that parents can
// compute their own outputs without resolving.
type GroupReference struct {
	NodeID  NodeID
	Group   GroupID
	Outputs []Symbol
}

func (n *GroupReference) ID() NodeID { return n.NodeID }

func (n *GroupReference) Children() []Node { return nil }

func (n *GroupReference) OutputSymbols() []Symbol { return n.Outputs }

func (n *GroupReference) ReplaceChildren(children []Node) Node {
	checkChildCount(n, children, 0)
	return n
}

func (n *GroupReference) String() string {
	return fmt.Sprintf("group %d", n.Group)
}
