package plan

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/gogo/protobuf/sortkeys"
)

// ErrUnknownSymbol is returned when the type of a symbol that was never
// registered with the allocator is requested. It indicates that an earlier
// stage produced an inconsistent tree and is fatal to the optimization.
var ErrUnknownSymbol = errors.New("unknown symbol")

// Symbol identifies a column within a plan. Symbols are immutable and
// compared by value: two symbols are the same column iff their names are
// equal. Nodes that reference the same column share the same symbol.
type Symbol struct {
	Name string
}

func (s Symbol) String() string {
	return s.Name
}

// Type is an opaque tag for the semantic type of a column. The analyzer owns
// the real type system; the optimizer only needs to carry types through so
// that new symbols can be allocated with the right one.
type Type string

const (
	Unknown   Type = "unknown"
	Boolean   Type = "boolean"
	Bigint    Type = "bigint"
	Double    Type = "double"
	Varchar   Type = "varchar"
	Timestamp Type = "timestamp"
)

// SymbolAllocator hands out fresh symbols and remembers the type of every
// symbol in the plan. One allocator exists per optimization; it is the single
// source of truth for symbols, which is what keeps independently-written
// rules from colliding on names.
type SymbolAllocator struct {
	types  map[Symbol]Type
	nextID int
}

// NewSymbolAllocator returns an allocator seeded with the analyzer's
// symbol-to-type bindings. The seed map is copied.
func NewSymbolAllocator(seed map[Symbol]Type) *SymbolAllocator {
	types := make(map[Symbol]Type, len(seed))
	for s, t := range seed {
		types[s] = t
	}
	return &SymbolAllocator{types: types}
}

// NewSymbol allocates a symbol distinct from every symbol previously seen by
// this allocator. Hint collisions are resolved by suffixing.
func (a *SymbolAllocator) NewSymbol(hint string, typ Type) Symbol {
	if hint == "" {
		hint = "expr"
	}
	s := Symbol{Name: hint}
	for {
		if _, ok := a.types[s]; !ok {
			break
		}
		s = Symbol{Name: fmt.Sprintf("%s_%d", hint, a.nextID)}
		a.nextID++
	}
	a.types[s] = typ
	return s
}

// TypeOf returns the type the symbol was registered with, or ErrUnknownSymbol
// if the allocator has never seen it.
func (a *SymbolAllocator) TypeOf(s Symbol) (Type, error) {
	t, ok := a.types[s]
	if !ok {
		return Unknown, errors.Wrapf(ErrUnknownSymbol, "%s", s)
	}
	return t, nil
}

// Symbols returns every registered symbol, sorted by name.
func (a *SymbolAllocator) Symbols() []Symbol {
	names := make([]string, 0, len(a.types))
	for s := range a.types {
		names = append(names, s.Name)
	}
	sortkeys.Strings(names)
	symbols := make([]Symbol, len(names))
	for i, n := range names {
		symbols[i] = Symbol{Name: n}
	}
	return symbols
}

// SymbolSet is a set of symbols.
type SymbolSet map[Symbol]struct{}

func NewSymbolSet(symbols ...Symbol) SymbolSet {
	set := make(SymbolSet, len(symbols))
	for _, s := range symbols {
		set[s] = struct{}{}
	}
	return set
}

func (set SymbolSet) Contains(s Symbol) bool {
	_, ok := set[s]
	return ok
}

func (set SymbolSet) Equals(other SymbolSet) bool {
	if len(set) != len(other) {
		return false
	}
	for s := range set {
		if !other.Contains(s) {
			return false
		}
	}
	return true
}

// SameOutputSet reports whether two symbol lists contain the same symbols,
// ignoring order and duplicates. This is the schema-preservation contract
// checked after every rewrite.
func SameOutputSet(a, b []Symbol) bool {
	return NewSymbolSet(a...).Equals(NewSymbolSet(b...))
}
