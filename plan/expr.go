package plan

import (
	"bytes"
	"fmt"
)

// Expression is a scalar expression attached to a plan node. The optimizer
// core only carries the shapes rules need to inspect: column references,
// literals, calls and comparisons. Anything richer stays opaque to rewriting.
type Expression interface {
	fmt.Stringer

	// ReferencedSymbols appends the symbols the expression references.
	ReferencedSymbols(symbols []Symbol) []Symbol
}

// SymbolReference is a bare reference to a column.
type SymbolReference struct {
	Symbol Symbol
}

func (e *SymbolReference) String() string {
	return e.Symbol.Name
}

func (e *SymbolReference) ReferencedSymbols(symbols []Symbol) []Symbol {
	return append(symbols, e.Symbol)
}

// Literal is a constant value.
type Literal struct {
	Value interface{}
}

func (e *Literal) String() string {
	return fmt.Sprintf("%v", e.Value)
}

func (e *Literal) ReferencedSymbols(symbols []Symbol) []Symbol {
	return symbols
}

// Call is a function invocation. Window nodes attach one per function, with
// arguments restricted to symbol references and literals by the analyzer.
type Call struct {
	Name string
	Args []Expression
}

func (e *Call) String() string {
	var buf bytes.Buffer
	buf.WriteString(e.Name)
	buf.WriteByte('(')
	for i, arg := range e.Args {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(arg.String())
	}
	buf.WriteByte(')')
	return buf.String()
}

func (e *Call) ReferencedSymbols(symbols []Symbol) []Symbol {
	for _, arg := range e.Args {
		symbols = arg.ReferencedSymbols(symbols)
	}
	return symbols
}

// ComparisonOp enumerates the comparison operators carried on filters.
type ComparisonOp string

const (
	EQ ComparisonOp = "="
	NE ComparisonOp = "<>"
	LT ComparisonOp = "<"
	LE ComparisonOp = "<="
	GT ComparisonOp = ">"
	GE ComparisonOp = ">="
)

// Comparison is a binary comparison.
type Comparison struct {
	Op    ComparisonOp
	Left  Expression
	Right Expression
}

func (e *Comparison) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right)
}

func (e *Comparison) ReferencedSymbols(symbols []Symbol) []Symbol {
	symbols = e.Left.ReferencedSymbols(symbols)
	return e.Right.ReferencedSymbols(symbols)
}

// ExtractSymbols returns the set of symbols referenced by an expression.
func ExtractSymbols(e Expression) SymbolSet {
	return NewSymbolSet(e.ReferencedSymbols(nil)...)
}
