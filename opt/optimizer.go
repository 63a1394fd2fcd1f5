package opt

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/kumar-anish/presto/plan"
)

// Optimizer drives an ordered list of rules over a plan to a fixed point.
//
// Each pass walks the memoized tree bottom-up: a group's children are
// explored before the group itself, so child rewrites are visible to parent
// rules within the same pass. At each group the enabled rules are tried in
// configured order and the first one that fires wins; the replacement is not
// re-offered to later rules at the same position until the next pass. Passes
// repeat until none fires, or the session's pass cap is hit, which surfaces
// as ErrNonConvergence rather than an unstable tree.
//
// An Optimizer is stateless across calls; the memo, allocators and lookup
// all live for a single Optimize invocation. Separate invocations may run
// concurrently as long as they do not share a plan, symbol allocator or node
// ID allocator.
type Optimizer struct {
	rules   []Rule
	session *Session
	log     *slog.Logger
}

// NewOptimizer returns a driver for the given rules. A nil session gets
// defaults; a nil logger disables logging.
func NewOptimizer(rules []Rule, session *Session, log *slog.Logger) *Optimizer {
	if session == nil {
		session = NewSession()
	}
	return &Optimizer{rules: rules, session: session, log: log}
}

// Optimize rewrites root and returns the optimized tree. The symbol
// allocator must already hold every symbol appearing in the tree. The
// context is only checked between passes: a single pass always completes or
// fails, so a cancelled query never observes a half-rewritten tree.
func (o *Optimizer) Optimize(
	ctx context.Context,
	root plan.Node,
	symbols *plan.SymbolAllocator,
	ids *plan.NodeIDAllocator,
) (plan.Node, error) {
	memo := NewMemo(ids)
	rootGroup := memo.Insert(root)
	rctx := &Context{
		Lookup:  NewLookup(memo),
		Symbols: symbols,
		IDs:     ids,
		Session: o.session,
	}

	for pass := 1; ; pass++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fired, err := o.exploreGroup(rootGroup, memo, rctx)
		if err != nil {
			return nil, err
		}
		if o.log != nil {
			o.log.Debug("optimization pass complete", "pass", pass, "fired", fired)
		}
		if fired == 0 {
			break
		}
		if pass >= o.session.maxPasses() {
			if o.log != nil {
				o.log.Warn("optimization did not converge", "passes", pass)
			}
			return nil, errors.Wrapf(ErrNonConvergence, "%d passes", pass)
		}
	}

	return memo.Extract(rootGroup)
}

// exploreGroup applies rules below the group, then at the group itself.
// It returns the number of rule firings.
func (o *Optimizer) exploreGroup(group plan.GroupID, memo *Memo, rctx *Context) (int, error) {
	rep, err := memo.Representative(group)
	if err != nil {
		return 0, err
	}

	fired := 0
	for _, child := range rep.Children() {
		ref, ok := child.(*plan.GroupReference)
		if !ok {
			return 0, errors.AssertionFailedf("memoized node %d has materialized child", rep.ID())
		}
		n, err := o.exploreGroup(ref.Group, memo, rctx)
		if err != nil {
			return 0, err
		}
		fired += n
	}

	for _, rule := range o.rules {
		if !rctx.Session.RuleEnabled(rule.Name()) {
			continue
		}
		if !rule.IsApplicable(rep) {
			continue
		}
		replacement, err := rule.Apply(rep, rctx)
		if err != nil {
			return 0, errors.Wrapf(err, "rule %s", rule.Name())
		}
		if replacement == nil {
			continue
		}
		if !plan.SameOutputSet(rep.OutputSymbols(), replacement.OutputSymbols()) {
			return 0, errors.Wrapf(ErrOutputSchemaMismatch,
				"rule %s: %v -> %v", rule.Name(), rep.OutputSymbols(), replacement.OutputSymbols())
		}
		if err := memo.Replace(group, replacement); err != nil {
			return 0, err
		}
		if o.log != nil {
			o.log.Debug("rule fired", "rule", rule.Name(), "node", rep.ID())
		}
		// First applicable rule wins; the rewritten group is not revisited
		// until the next pass.
		return fired + 1, nil
	}

	return fired, nil
}
