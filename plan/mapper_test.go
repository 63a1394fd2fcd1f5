package plan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSymbolMapper(t *testing.T) {
	a := Symbol{Name: "a"}
	b := Symbol{Name: "b"}
	x := Symbol{Name: "x"}

	m := NewSymbolMapper(map[Symbol]Symbol{x: a})

	require.Equal(t, a, m.Map(x))
	require.Equal(t, b, m.Map(b))

	expr := m.MapExpression(&Call{Name: "sum", Args: []Expression{&SymbolReference{Symbol: x}}})
	require.Equal(t, "sum(a)", expr.String())
}

func TestSymbolMapperCompose(t *testing.T) {
	a := Symbol{Name: "a"}
	x := Symbol{Name: "x"}
	y := Symbol{Name: "y"}

	first := NewSymbolMapper(map[Symbol]Symbol{y: x})
	second := NewSymbolMapper(map[Symbol]Symbol{x: a})
	composed := first.Compose(second)

	require.Equal(t, a, composed.Map(y))
	require.Equal(t, a, composed.Map(x))
}

func TestSymbolMapperWindow(t *testing.T) {
	a := Symbol{Name: "a"}
	b := Symbol{Name: "b"}
	x := Symbol{Name: "x"}
	out := Symbol{Name: "sum_x"}

	offset := x
	w := &WindowNode{
		NodeID: 7,
		Spec: Specification{
			Partition: []Symbol{x},
			Ordering:  Ordering{{Symbol: b, Order: DescNullsFirst}},
		},
		Functions: []WindowFunction{{
			Output: out,
			Call:   &Call{Name: "sum", Args: []Expression{&SymbolReference{Symbol: x}}},
			Frame: Frame{
				Type:  RowsFrame,
				Start: FrameBound{Type: Preceding, Offset: &offset},
			},
		}},
		Source: &ScanNode{NodeID: 1, Table: "t", Columns: []Symbol{a, b}},
	}

	mapped := NewSymbolMapper(map[Symbol]Symbol{x: a}).MapWindow(w)

	require.Equal(t, []Symbol{a}, mapped.Spec.Partition)
	require.Equal(t, Ordering{{Symbol: b, Order: DescNullsFirst}}, mapped.Spec.Ordering)
	require.Equal(t, "sum(a)", mapped.Functions[0].Call.String())
	require.Equal(t, a, *mapped.Functions[0].Frame.Start.Offset)

	// Function output symbols are the window's own creations and stay put.
	require.Equal(t, out, mapped.Functions[0].Output)
	require.Equal(t, w.NodeID, mapped.NodeID)
}
