package plan

// SymbolMapper rewrites symbol references through a symbol-to-symbol
// mapping. Symbols absent from the mapping pass through unchanged. Mappers
// are used when a rule relocates an operator across a renaming projection.
type SymbolMapper struct {
	mapping map[Symbol]Symbol
}

func NewSymbolMapper(mapping map[Symbol]Symbol) *SymbolMapper {
	return &SymbolMapper{mapping: mapping}
}

// Compose returns a mapper applying m first, then next.
func (m *SymbolMapper) Compose(next *SymbolMapper) *SymbolMapper {
	composed := make(map[Symbol]Symbol, len(m.mapping)+len(next.mapping))
	for from, to := range m.mapping {
		composed[from] = next.Map(to)
	}
	for from, to := range next.mapping {
		if _, ok := composed[from]; !ok {
			composed[from] = to
		}
	}
	return NewSymbolMapper(composed)
}

func (m *SymbolMapper) Map(s Symbol) Symbol {
	if to, ok := m.mapping[s]; ok {
		return to
	}
	return s
}

func (m *SymbolMapper) MapAll(symbols []Symbol) []Symbol {
	out := make([]Symbol, len(symbols))
	for i, s := range symbols {
		out[i] = m.Map(s)
	}
	return out
}

func (m *SymbolMapper) MapExpression(e Expression) Expression {
	switch t := e.(type) {
	case *SymbolReference:
		return &SymbolReference{Symbol: m.Map(t.Symbol)}
	case *Literal:
		return t
	case *Call:
		args := make([]Expression, len(t.Args))
		for i, arg := range t.Args {
			args[i] = m.MapExpression(arg)
		}
		return &Call{Name: t.Name, Args: args}
	case *Comparison:
		return &Comparison{Op: t.Op, Left: m.MapExpression(t.Left), Right: m.MapExpression(t.Right)}
	}
	panic("unreachable")
}

func (m *SymbolMapper) MapOrdering(o Ordering) Ordering {
	out := make(Ordering, len(o))
	for i, term := range o {
		out[i] = OrderingTerm{Symbol: m.Map(term.Symbol), Order: term.Order}
	}
	return out
}

func (m *SymbolMapper) MapSpecification(s Specification) Specification {
	return Specification{
		Partition: m.MapAll(s.Partition),
		Ordering:  m.MapOrdering(s.Ordering),
	}
}

func (m *SymbolMapper) MapFrame(f Frame) Frame {
	out := Frame{Type: f.Type, Start: m.mapBound(f.Start)}
	if f.End != nil {
		end := m.mapBound(*f.End)
		out.End = &end
	}
	return out
}

func (m *SymbolMapper) mapBound(b FrameBound) FrameBound {
	if b.Offset == nil {
		return b
	}
	offset := m.Map(*b.Offset)
	return FrameBound{Type: b.Type, Offset: &offset}
}

// MapWindow rewrites the symbols a window node reads. The function output
// symbols are the node's own creations and are left alone.
func (m *SymbolMapper) MapWindow(n *WindowNode) *WindowNode {
	functions := make([]WindowFunction, len(n.Functions))
	for i, fn := range n.Functions {
		functions[i] = WindowFunction{
			Output: fn.Output,
			Call:   m.MapExpression(fn.Call).(*Call),
			Frame:  m.MapFrame(fn.Frame),
		}
	}
	return &WindowNode{
		NodeID:    n.NodeID,
		Source:    n.Source,
		Spec:      m.MapSpecification(n.Spec),
		Functions: functions,
	}
}
