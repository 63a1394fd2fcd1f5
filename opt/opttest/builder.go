// Package opttest provides helpers for testing optimizer rules: a fluent
// plan builder standing in for the analyzer, and a tester that applies a
// single rule the way the driver would.
package opttest

import (
	"github.com/kumar-anish/presto/plan"
)

// PlanBuilder constructs typed plan trees by hand. It tracks the type of
// every symbol it creates so the resulting symbol allocator is seeded
// exactly as the analyzer would seed it.
type PlanBuilder struct {
	ids   *plan.NodeIDAllocator
	types map[plan.Symbol]plan.Type
}

func NewPlanBuilder() *PlanBuilder {
	return &PlanBuilder{
		ids:   plan.NewNodeIDAllocator(),
		types: make(map[plan.Symbol]plan.Type),
	}
}

// Symbol registers a column with its type and returns it.
func (b *PlanBuilder) Symbol(name string, typ plan.Type) plan.Symbol {
	s := plan.Symbol{Name: name}
	b.types[s] = typ
	return s
}

// SymbolAllocator returns an allocator seeded with every symbol built so
// far.
func (b *PlanBuilder) SymbolAllocator() *plan.SymbolAllocator {
	return plan.NewSymbolAllocator(b.types)
}

// IDs returns the builder's node ID allocator, shared with the plan under
// construction.
func (b *PlanBuilder) IDs() *plan.NodeIDAllocator {
	return b.ids
}

func (b *PlanBuilder) Scan(table string, columns ...plan.Symbol) plan.Node {
	return &plan.ScanNode{NodeID: b.ids.Next(), Table: table, Columns: columns}
}

func (b *PlanBuilder) Filter(source plan.Node, predicate plan.Expression) plan.Node {
	return &plan.FilterNode{NodeID: b.ids.Next(), Source: source, Predicate: predicate}
}

func (b *PlanBuilder) Project(source plan.Node, assignments plan.Assignments) plan.Node {
	return &plan.ProjectNode{NodeID: b.ids.Next(), Source: source, Assignments: assignments}
}

// IdentityProject projects the source's outputs through unchanged.
func (b *PlanBuilder) IdentityProject(source plan.Node) plan.Node {
	return b.Project(source, plan.IdentityProjection(source.OutputSymbols()))
}

func (b *PlanBuilder) Window(source plan.Node, spec plan.Specification, functions ...plan.WindowFunction) plan.Node {
	return &plan.WindowNode{NodeID: b.ids.Next(), Source: source, Spec: spec, Functions: functions}
}

// WindowFunction builds one windowed computation, registering its output
// symbol.
func (b *PlanBuilder) WindowFunction(output string, typ plan.Type, frame plan.Frame, name string, args ...plan.Symbol) plan.WindowFunction {
	callArgs := make([]plan.Expression, len(args))
	for i, a := range args {
		callArgs[i] = &plan.SymbolReference{Symbol: a}
	}
	return plan.WindowFunction{
		Output: b.Symbol(output, typ),
		Call:   &plan.Call{Name: name, Args: callArgs},
		Frame:  frame,
	}
}

func (b *PlanBuilder) Limit(source plan.Node, count int64) plan.Node {
	return &plan.LimitNode{NodeID: b.ids.Next(), Source: source, Count: count}
}

func (b *PlanBuilder) Sort(source plan.Node, ordering plan.Ordering) plan.Node {
	return &plan.SortNode{NodeID: b.ids.Next(), Source: source, Ordering: ordering}
}

func (b *PlanBuilder) Join(joinType plan.JoinType, left, right plan.Node, criteria ...plan.EquiClause) plan.Node {
	return &plan.JoinNode{NodeID: b.ids.Next(), Type: joinType, Left: left, Right: right, Criteria: criteria}
}

func (b *PlanBuilder) Values(columns []plan.Symbol, rows ...[]plan.Expression) plan.Node {
	return &plan.ValuesNode{NodeID: b.ids.Next(), Columns: columns, Rows: rows}
}
