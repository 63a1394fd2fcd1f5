package opt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kumar-anish/presto/opt"
	"github.com/kumar-anish/presto/opt/opttest"
	"github.com/kumar-anish/presto/plan"
)

func TestPruneIdentityProjection(t *testing.T) {
	result := opttest.NewRuleTester(t, opt.PruneIdentityProjections{}).
		On(func(b *opttest.PlanBuilder) plan.Node {
			scan := b.Scan("orders",
				b.Symbol("orderkey", plan.Bigint),
				b.Symbol("totalprice", plan.Double))
			return b.IdentityProject(scan)
		}).
		Fires()

	_, ok := result.(*plan.ScanNode)
	require.True(t, ok)
}

func TestPruneKeepsRenamingProjection(t *testing.T) {
	opttest.NewRuleTester(t, opt.PruneIdentityProjections{}).
		On(func(b *opttest.PlanBuilder) plan.Node {
			scan := b.Scan("orders", b.Symbol("orderkey", plan.Bigint))
			renamed := b.Symbol("key", plan.Bigint)
			return b.Project(scan, plan.Assignments{
				{Symbol: renamed, Expression: &plan.SymbolReference{Symbol: plan.Symbol{Name: "orderkey"}}},
			})
		}).
		DoesNotFire()
}

func TestPruneKeepsColumnDroppingProjection(t *testing.T) {
	// Every assignment is an identity but a column is dropped; removing the
	// projection would widen the schema.
	opttest.NewRuleTester(t, opt.PruneIdentityProjections{}).
		On(func(b *opttest.PlanBuilder) plan.Node {
			scan := b.Scan("orders",
				b.Symbol("orderkey", plan.Bigint),
				b.Symbol("totalprice", plan.Double))
			return b.Project(scan, plan.IdentityProjection([]plan.Symbol{{Name: "orderkey"}}))
		}).
		DoesNotFire()
}

func TestPruneKeepsComputingProjection(t *testing.T) {
	opttest.NewRuleTester(t, opt.PruneIdentityProjections{}).
		On(func(b *opttest.PlanBuilder) plan.Node {
			scan := b.Scan("orders", b.Symbol("orderkey", plan.Bigint))
			doubled := b.Symbol("doubled", plan.Bigint)
			return b.Project(scan, plan.Assignments{
				{Symbol: plan.Symbol{Name: "orderkey"}, Expression: &plan.SymbolReference{Symbol: plan.Symbol{Name: "orderkey"}}},
				{Symbol: doubled, Expression: &plan.Call{Name: "multiply", Args: []plan.Expression{
					&plan.SymbolReference{Symbol: plan.Symbol{Name: "orderkey"}},
					&plan.Literal{Value: 2},
				}}},
			})
		}).
		DoesNotFire()
}
