package opt

import (
	"github.com/cockroachdb/errors"

	"github.com/kumar-anish/presto/plan"
)

// Lookup sees through the memo's indirection. Given a materialized node it
// returns the node unchanged; given a group reference it returns the group's
// current representative, resolving recursively until a materialized node is
// reached. Lookup is read-only: installing representatives is the driver's
// job.
//
// Resolution is idempotent within one pass, but a rule must not assume that
// structural identity survives re-resolution across rewrites.
type Lookup interface {
	Resolve(node plan.Node) (plan.Node, error)
}

type memoLookup struct {
	memo *Memo
}

// NewLookup returns a Lookup backed by the given memo.
func NewLookup(memo *Memo) Lookup {
	return &memoLookup{memo: memo}
}

func (l *memoLookup) Resolve(node plan.Node) (plan.Node, error) {
	for {
		ref, ok := node.(*plan.GroupReference)
		if !ok {
			return node, nil
		}
		resolved, err := l.memo.Representative(ref.Group)
		if err != nil {
			return nil, err
		}
		node = resolved
	}
}

type materializedLookup struct{}

// MaterializedOnly is a Lookup for plans that contain no group references,
// as handed over by the analyzer or built directly in tests. Resolving a
// group reference through it fails with ErrUnresolvedGroup.
var MaterializedOnly Lookup = materializedLookup{}

func (materializedLookup) Resolve(node plan.Node) (plan.Node, error) {
	if ref, ok := node.(*plan.GroupReference); ok {
		return nil, errors.Wrapf(ErrUnresolvedGroup, "group %d outside a memo", ref.Group)
	}
	return node, nil
}
