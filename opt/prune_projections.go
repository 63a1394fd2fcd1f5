package opt

import (
	"github.com/kumar-anish/presto/plan"
)

// PruneIdentityProjections removes projections that pass every one of their
// source's columns through unchanged. Other rules leave these behind when
// they absorb or relocate operators; pruning them keeps later passes from
// tripping over no-op nodes.
//
// A projection that drops columns is not removable even when every surviving
// assignment is an identity: removing it would widen the output schema.
type PruneIdentityProjections struct{}

func (PruneIdentityProjections) Name() string { return "PruneIdentityProjections" }

func (PruneIdentityProjections) IsApplicable(node plan.Node) bool {
	_, ok := node.(*plan.ProjectNode)
	return ok
}

func (PruneIdentityProjections) Apply(node plan.Node, ctx *Context) (plan.Node, error) {
	project := node.(*plan.ProjectNode)
	if !project.Assignments.IsIdentity() {
		return nil, nil
	}
	if !plan.SameOutputSet(project.OutputSymbols(), project.Source.OutputSymbols()) {
		return nil, nil
	}
	return project.Source, nil
}
