package opt

import (
	"github.com/kumar-anish/presto/plan"
)

// MergeLimits collapses a limit whose input is another limit into a single
// node with the smaller count.
type MergeLimits struct{}

func (MergeLimits) Name() string { return "MergeLimits" }

func (MergeLimits) IsApplicable(node plan.Node) bool {
	_, ok := node.(*plan.LimitNode)
	return ok
}

func (MergeLimits) Apply(node plan.Node, ctx *Context) (plan.Node, error) {
	limit := node.(*plan.LimitNode)
	child, err := ctx.Lookup.Resolve(limit.Source)
	if err != nil {
		return nil, err
	}
	inner, ok := child.(*plan.LimitNode)
	if !ok {
		return nil, nil
	}
	count := limit.Count
	if inner.Count < count {
		count = inner.Count
	}
	return &plan.LimitNode{NodeID: limit.NodeID, Source: inner.Source, Count: count}, nil
}
