package opt

import "github.com/cockroachdb/errors"

// The optimizer's failure modes. Every one of them aborts the optimization
// of the current query; none is recovered with a fallback tree, because a
// partially-rewritten plan is worse than a failed optimization. Callers test
// for a kind with errors.Is.
var (
	// ErrUnresolvedGroup indicates a group reference with no representative.
	// The driver installs a representative before any rule runs, so hitting
	// this means a driver invariant was violated.
	ErrUnresolvedGroup = errors.New("unresolved group")

	// ErrOutputSchemaMismatch indicates a rule returned a replacement whose
	// output-symbol set differs from its input's. The rewrite is rejected;
	// this is a bug in the rule, not a condition to retry.
	ErrOutputSchemaMismatch = errors.New("rule changed output schema")

	// ErrNonConvergence indicates the fixed-point loop hit its pass cap with
	// rules still firing.
	ErrNonConvergence = errors.New("optimization did not converge")
)
