package plan

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestSymbolAllocatorUniqueness(t *testing.T) {
	a := NewSymbolAllocator(map[Symbol]Type{
		{Name: "orderkey"}: Bigint,
	})

	seen := map[Symbol]struct{}{{Name: "orderkey"}: {}}
	for i := 0; i < 100; i++ {
		s := a.NewSymbol("orderkey", Bigint)
		_, dup := seen[s]
		require.False(t, dup, "allocator returned duplicate symbol %s", s)
		seen[s] = struct{}{}
	}
}

func TestSymbolAllocatorTypeOf(t *testing.T) {
	a := NewSymbolAllocator(map[Symbol]Type{
		{Name: "quantity"}: Double,
	})

	typ, err := a.TypeOf(Symbol{Name: "quantity"})
	require.NoError(t, err)
	require.Equal(t, Double, typ)

	s := a.NewSymbol("sum", Double)
	typ, err = a.TypeOf(s)
	require.NoError(t, err)
	require.Equal(t, Double, typ)

	_, err = a.TypeOf(Symbol{Name: "never_registered"})
	require.True(t, errors.Is(err, ErrUnknownSymbol))
}

func TestSymbolAllocatorEmptyHint(t *testing.T) {
	a := NewSymbolAllocator(nil)
	s := a.NewSymbol("", Unknown)
	require.NotEmpty(t, s.Name)
}

func TestSymbolsSorted(t *testing.T) {
	a := NewSymbolAllocator(map[Symbol]Type{
		{Name: "c"}: Bigint,
		{Name: "a"}: Bigint,
		{Name: "b"}: Bigint,
	})
	require.Equal(t,
		[]Symbol{{Name: "a"}, {Name: "b"}, {Name: "c"}},
		a.Symbols())
}

func TestSameOutputSet(t *testing.T) {
	x := Symbol{Name: "x"}
	y := Symbol{Name: "y"}
	z := Symbol{Name: "z"}

	require.True(t, SameOutputSet([]Symbol{x, y}, []Symbol{y, x}))
	require.True(t, SameOutputSet([]Symbol{x, x, y}, []Symbol{y, x}))
	require.False(t, SameOutputSet([]Symbol{x, y}, []Symbol{x, z}))
	require.False(t, SameOutputSet([]Symbol{x, y}, []Symbol{x}))
	require.True(t, SameOutputSet(nil, nil))
}
