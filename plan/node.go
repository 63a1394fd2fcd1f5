package plan

import "fmt"

// NodeID identifies a node within a single plan. IDs are allocated by a
// NodeIDAllocator and are unique for the lifetime of one optimization.
type NodeID int32

// NodeIDAllocator hands out plan node IDs. Like the symbol allocator there is
// exactly one per optimization, shared by the analyzer output and every rule.
type NodeIDAllocator struct {
	next NodeID
}

func NewNodeIDAllocator() *NodeIDAllocator {
	return &NodeIDAllocator{}
}

func (a *NodeIDAllocator) Next() NodeID {
	id := a.next
	a.next++
	return id
}

// Node is one operator in the relational plan tree. The variant set is
// closed: every consumer switches exhaustively over the concrete types
// declared in this package.
//
// Nodes are immutable. A rewrite constructs a new node, sharing the
// untouched subtrees of the old one; nothing is ever modified in place.
// Children seen by a rule may be GroupReference placeholders rather than
// materialized nodes, which the rule resolves through a Lookup.
type Node interface {
	// ID returns the node's unique identifier.
	ID() NodeID

	// Children returns the node's inputs, in operator-specific order.
	Children() []Node

	// OutputSymbols returns the ordered columns the operator produces.
	OutputSymbols() []Symbol

	// ReplaceChildren returns a copy of the node with the given children
	// substituted for the old ones. The attributes and ID are retained.
	// It panics if the child count does not match the operator's arity.
	ReplaceChildren(children []Node) Node
}

func checkChildCount(n Node, children []Node, want int) {
	if len(children) != want {
		panic(fmt.Sprintf("%T: expected %d children, got %d", n, want, len(children)))
	}
}
