package opt

import (
	"github.com/kumar-anish/presto/plan"
)

// MergeWindows merges windowed-aggregation nodes that share a partitioning
// and ordering specification.
//
// Starting from a window node, the rule walks down the chain of window nodes
// separated only by pass-through projections (every assignment a bare column
// reference). If a deeper window in the chain has an equal specification,
// the starting window's functions are folded into it and the starting node
// disappears; renamings introduced by intervening projections are applied to
// the relocated functions, and the projections are extended to carry the
// relocated outputs upward. Per-function frames travel with their functions,
// so nodes with differing frames still merge.
//
// The walk stops at the first window whose own outputs the starting window
// consumes (the windows are then ordered by data dependency and cannot be
// reordered), at any projection that computes an expression, and at any
// other operator. Join branches are therefore never crossed: the chain never
// extends through a join, and windows in sibling branches are never
// candidates for each other.
type MergeWindows struct{}

func (MergeWindows) Name() string { return "MergeWindows" }

func (MergeWindows) IsApplicable(node plan.Node) bool {
	_, ok := node.(*plan.WindowNode)
	return ok
}

// chainElem is one operator of the downward chain below the starting
// window: either a window or a pass-through projection.
type chainElem struct {
	window  *plan.WindowNode
	project *plan.ProjectNode
}

func (MergeWindows) Apply(node plan.Node, ctx *Context) (plan.Node, error) {
	root := node.(*plan.WindowNode)

	chain, err := gatherChain(root, ctx.Lookup)
	if err != nil {
		return nil, err
	}

	mapper := plan.NewSymbolMapper(nil)
	for i, e := range chain {
		if e.project != nil {
			mapping, _ := e.project.Assignments.SymbolMapping()
			mapper = mapper.Compose(plan.NewSymbolMapper(mapping))
			continue
		}

		target := e.window
		mapped := mapper.MapWindow(root)
		if intersects(mapped.ReferencedSymbols(), target.CreatedSymbols()) {
			// The starting window consumes this window's results; it cannot
			// move below it, so nothing deeper is a candidate either.
			return nil, nil
		}
		if mapped.Spec.Equals(target.Spec) {
			relocated := make([]plan.Symbol, len(mapped.Functions))
			for j, fn := range mapped.Functions {
				relocated[j] = fn.Output
			}
			return rebuildChain(chain[:i], mergeInto(target, mapped), relocated), nil
		}
	}

	return nil, nil
}

// gatherChain collects the window and pass-through projection operators
// below root, stopping at the first operator of any other shape.
func gatherChain(root *plan.WindowNode, lookup Lookup) ([]chainElem, error) {
	var chain []chainElem
	current, err := lookup.Resolve(root.Source)
	if err != nil {
		return nil, err
	}
	for {
		switch t := current.(type) {
		case *plan.WindowNode:
			chain = append(chain, chainElem{window: t})
			current, err = lookup.Resolve(t.Source)
		case *plan.ProjectNode:
			if _, ok := t.Assignments.SymbolMapping(); !ok {
				return chain, nil
			}
			chain = append(chain, chainElem{project: t})
			current, err = lookup.Resolve(t.Source)
		default:
			return chain, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// mergeInto returns target with the mapped window's functions appended. The
// merged node keeps the target's identifier and child; the relocated
// functions keep their output symbols.
func mergeInto(target, mapped *plan.WindowNode) *plan.WindowNode {
	functions := make([]plan.WindowFunction, 0, len(target.Functions)+len(mapped.Functions))
	functions = append(functions, target.Functions...)
	functions = append(functions, mapped.Functions...)
	return &plan.WindowNode{
		NodeID:    target.NodeID,
		Source:    target.Source,
		Spec:      target.Spec,
		Functions: functions,
	}
}

// rebuildChain reassembles the operators that sat between the starting
// window and the merge target, on top of the merged node. Projections along
// the way gain identity assignments for the relocated function outputs,
// which now originate below them.
func rebuildChain(between []chainElem, merged *plan.WindowNode, relocated []plan.Symbol) plan.Node {
	current := plan.Node(merged)
	for i := len(between) - 1; i >= 0; i-- {
		e := between[i]
		if e.window != nil {
			current = e.window.ReplaceChildren([]plan.Node{current})
			continue
		}
		assignments := make(plan.Assignments, 0, len(e.project.Assignments)+len(relocated))
		assignments = append(assignments, e.project.Assignments...)
		assignments = append(assignments, plan.IdentityProjection(relocated)...)
		current = &plan.ProjectNode{
			NodeID:      e.project.NodeID,
			Source:      current,
			Assignments: assignments,
		}
	}
	return current
}

func intersects(a, b plan.SymbolSet) bool {
	for s := range a {
		if b.Contains(s) {
			return true
		}
	}
	return false
}
