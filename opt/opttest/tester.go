package opttest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kumar-anish/presto/opt"
	"github.com/kumar-anish/presto/plan"
)

// RuleTester applies a single rule to a hand-built plan the way the driver
// would: the plan is memoized first, so the rule sees group references for
// children and resolves them through a real lookup.
type RuleTester struct {
	t       *testing.T
	rule    opt.Rule
	builder *PlanBuilder
	root    plan.Node
	session *opt.Session
}

func NewRuleTester(t *testing.T, rule opt.Rule) *RuleTester {
	return &RuleTester{
		t:       t,
		rule:    rule,
		builder: NewPlanBuilder(),
		session: opt.NewSession(),
	}
}

// WithSession substitutes the session used for rule application.
func (rt *RuleTester) WithSession(session *opt.Session) *RuleTester {
	rt.session = session
	return rt
}

// On builds the plan under test.
func (rt *RuleTester) On(build func(b *PlanBuilder) plan.Node) *RuleTester {
	require.Nil(rt.t, rt.root, "plan has already been set")
	rt.root = build(rt.builder)
	return rt
}

// DoesNotFire asserts that the rule declines the plan.
func (rt *RuleTester) DoesNotFire() {
	rt.t.Helper()
	result, _ := rt.apply()
	if result != nil {
		rt.t.Fatalf("expected %s not to fire for:\n%s\ngot:\n%s",
			rt.rule.Name(), plan.Format(rt.root), plan.Format(result))
	}
}

// Fires asserts that the rule rewrites the plan, checks the output-symbol
// contract, and returns the fully materialized replacement tree.
func (rt *RuleTester) Fires() plan.Node {
	rt.t.Helper()
	result, memo := rt.apply()
	if result == nil {
		rt.t.Fatalf("%s did not fire for:\n%s", rt.rule.Name(), plan.Format(rt.root))
	}
	require.True(rt.t,
		plan.SameOutputSet(rt.root.OutputSymbols(), result.OutputSymbols()),
		"output schema of transformed and original plans are not equivalent\n\texpected: %v\n\tactual:   %v",
		rt.root.OutputSymbols(), result.OutputSymbols())

	group := memo.Insert(result)
	materialized, err := memo.Extract(group)
	require.NoError(rt.t, err)
	return materialized
}

func (rt *RuleTester) apply() (plan.Node, *opt.Memo) {
	rt.t.Helper()
	require.NotNil(rt.t, rt.root, "no plan has been set")

	memo := opt.NewMemo(rt.builder.IDs())
	group := memo.Insert(rt.root)
	rep, err := memo.Representative(group)
	require.NoError(rt.t, err)

	ctx := &opt.Context{
		Lookup:  opt.NewLookup(memo),
		Symbols: rt.builder.SymbolAllocator(),
		IDs:     rt.builder.IDs(),
		Session: rt.session,
	}

	if !rt.rule.IsApplicable(rep) {
		return nil, memo
	}
	result, err := rt.rule.Apply(rep, ctx)
	require.NoError(rt.t, err)
	return result, memo
}
