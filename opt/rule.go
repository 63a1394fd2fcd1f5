package opt

import (
	"github.com/kumar-anish/presto/plan"
)

// Context carries the per-optimization collaborators a rule may use: the
// lookup for seeing through group references, the allocators for minting
// symbols and node IDs, and the session for feature flags. All four are
// owned by a single optimization; none may be shared across concurrently
// running optimizations.
type Context struct {
	Lookup  Lookup
	Symbols *plan.SymbolAllocator
	IDs     *plan.NodeIDAllocator
	Session *Session
}

// Rule is a pattern-matched local tree transformation.
//
// IsApplicable is the cheap shape test, typically a type assertion on the
// node; the driver calls it before Apply so that non-matching nodes cost
// nothing. Apply performs the deeper precondition checks and either returns
// a replacement subtree or (nil, nil) for "no match". A non-nil error always
// aborts the optimization.
//
// A rule never mutates its input node or anything reachable from it; it
// composes replacements out of new nodes and shared, untouched subtrees. The
// replacement must produce the same output-symbol set as the input (order
// may differ); the driver enforces this. A rule is free to resolve children
// through ctx.Lookup and to recurse into them to compose a multi-level
// replacement in a single firing.
type Rule interface {
	Name() string
	IsApplicable(node plan.Node) bool
	Apply(node plan.Node, ctx *Context) (plan.Node, error)
}

// DefaultRules returns the standard rule list in its configured order.
func DefaultRules() []Rule {
	return []Rule{
		MergeWindows{},
		PruneIdentityProjections{},
		MergeLimits{},
	}
}
