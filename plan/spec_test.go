package plan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpecificationEquality(t *testing.T) {
	suppkey := Symbol{Name: "suppkey"}
	orderkey := Symbol{Name: "orderkey"}
	shipdate := Symbol{Name: "shipdate"}

	a := Specification{
		Partition: []Symbol{suppkey},
		Ordering:  Ordering{{Symbol: orderkey, Order: AscNullsLast}},
	}

	require.True(t, a.Equals(Specification{
		Partition: []Symbol{suppkey},
		Ordering:  Ordering{{Symbol: orderkey, Order: AscNullsLast}},
	}))

	// Partition symbols are compared as a set.
	multi := Specification{Partition: []Symbol{suppkey, orderkey}}
	require.True(t, multi.Equals(Specification{Partition: []Symbol{orderkey, suppkey}}))

	// Different partition membership.
	require.False(t, a.Equals(Specification{
		Partition: []Symbol{orderkey},
		Ordering:  Ordering{{Symbol: orderkey, Order: AscNullsLast}},
	}))

	// Different ordering symbol.
	require.False(t, a.Equals(Specification{
		Partition: []Symbol{suppkey},
		Ordering:  Ordering{{Symbol: shipdate, Order: AscNullsLast}},
	}))

	// Different direction.
	require.False(t, a.Equals(Specification{
		Partition: []Symbol{suppkey},
		Ordering:  Ordering{{Symbol: orderkey, Order: DescNullsLast}},
	}))

	// Different null ordering.
	require.False(t, a.Equals(Specification{
		Partition: []Symbol{suppkey},
		Ordering:  Ordering{{Symbol: orderkey, Order: AscNullsFirst}},
	}))

	// Ordering is a sequence: position matters.
	two := Specification{
		Partition: []Symbol{suppkey},
		Ordering: Ordering{
			{Symbol: orderkey, Order: AscNullsLast},
			{Symbol: shipdate, Order: AscNullsLast},
		},
	}
	swapped := Specification{
		Partition: []Symbol{suppkey},
		Ordering: Ordering{
			{Symbol: shipdate, Order: AscNullsLast},
			{Symbol: orderkey, Order: AscNullsLast},
		},
	}
	require.False(t, two.Equals(swapped))
}

func TestSpecificationReferencedSymbols(t *testing.T) {
	suppkey := Symbol{Name: "suppkey"}
	orderkey := Symbol{Name: "orderkey"}

	s := Specification{
		Partition: []Symbol{suppkey},
		Ordering:  Ordering{{Symbol: orderkey, Order: AscNullsLast}},
	}
	require.True(t, s.ReferencedSymbols().Equals(NewSymbolSet(suppkey, orderkey)))
}
