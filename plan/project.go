package plan

// Assignment binds an output symbol to the expression computing it.
type Assignment struct {
	Symbol     Symbol
	Expression Expression
}

// Assignments is the ordered projection list of a ProjectNode. Order is the
// node's output order.
type Assignments []Assignment

// Outputs returns the assigned symbols in assignment order.
func (as Assignments) Outputs() []Symbol {
	symbols := make([]Symbol, len(as))
	for i, a := range as {
		symbols[i] = a.Symbol
	}
	return symbols
}

// IsIdentity reports whether every assignment projects a symbol onto itself.
func (as Assignments) IsIdentity() bool {
	for _, a := range as {
		ref, ok := a.Expression.(*SymbolReference)
		if !ok || ref.Symbol != a.Symbol {
			return false
		}
	}
	return true
}

// SymbolMapping returns the output-to-input symbol mapping when every
// assignment is a bare column reference, and false when any assignment
// computes something.
func (as Assignments) SymbolMapping() (map[Symbol]Symbol, bool) {
	mapping := make(map[Symbol]Symbol, len(as))
	for _, a := range as {
		ref, ok := a.Expression.(*SymbolReference)
		if !ok {
			return nil, false
		}
		mapping[a.Symbol] = ref.Symbol
	}
	return mapping, true
}

// ProjectNode computes a new row shape from its source. Assignments that are
// bare symbol references rename or pass through source columns; anything
// else computes a fresh column.
type ProjectNode struct {
	NodeID      NodeID
	Source      Node
	Assignments Assignments
}

func (n *ProjectNode) ID() NodeID { return n.NodeID }

func (n *ProjectNode) Children() []Node { return []Node{n.Source} }

func (n *ProjectNode) OutputSymbols() []Symbol { return n.Assignments.Outputs() }

func (n *ProjectNode) ReplaceChildren(children []Node) Node {
	checkChildCount(n, children, 1)
	return &ProjectNode{NodeID: n.NodeID, Source: children[0], Assignments: n.Assignments}
}

// IdentityProjection builds assignments passing the given symbols through
// unchanged.
func IdentityProjection(symbols []Symbol) Assignments {
	as := make(Assignments, len(symbols))
	for i, s := range symbols {
		as[i] = Assignment{Symbol: s, Expression: &SymbolReference{Symbol: s}}
	}
	return as
}
