package plan

import (
	"bytes"
	"fmt"
)

// SortOrder pairs a sort direction with a null placement.
type SortOrder int8

const (
	AscNullsFirst SortOrder = iota
	AscNullsLast
	DescNullsFirst
	DescNullsLast
)

func (o SortOrder) String() string {
	switch o {
	case AscNullsFirst:
		return "asc nulls first"
	case AscNullsLast:
		return "asc nulls last"
	case DescNullsFirst:
		return "desc nulls first"
	case DescNullsLast:
		return "desc nulls last"
	}
	return fmt.Sprintf("sortorder(%d)", o)
}

// OrderingTerm is one symbol of an ordering with its sort order.
type OrderingTerm struct {
	Symbol Symbol
	Order  SortOrder
}

// Ordering is an ordered list of sort terms. Unlike a partition key, term
// order is significant.
type Ordering []OrderingTerm

func (o Ordering) Equals(other Ordering) bool {
	if len(o) != len(other) {
		return false
	}
	for i := range o {
		if o[i] != other[i] {
			return false
		}
	}
	return true
}

func (o Ordering) String() string {
	var buf bytes.Buffer
	for i, term := range o {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s %s", term.Symbol, term.Order)
	}
	return buf.String()
}

// Specification describes a window operator's partitioning and ordering. The
// partition key is a set: two specifications with the same partition symbols
// in different order are equal. The ordering is a sequence: symbols, sort
// orders and their positions must all match.
type Specification struct {
	Partition []Symbol
	Ordering  Ordering
}

func (s Specification) Equals(other Specification) bool {
	if !NewSymbolSet(s.Partition...).Equals(NewSymbolSet(other.Partition...)) {
		return false
	}
	return s.Ordering.Equals(other.Ordering)
}

// ReferencedSymbols returns the symbols named by the partition and ordering.
func (s Specification) ReferencedSymbols() SymbolSet {
	set := NewSymbolSet(s.Partition...)
	for _, term := range s.Ordering {
		set[term.Symbol] = struct{}{}
	}
	return set
}

func (s Specification) String() string {
	var buf bytes.Buffer
	buf.WriteString("partition by (")
	for i, p := range s.Partition {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(p.Name)
	}
	buf.WriteString(")")
	if len(s.Ordering) > 0 {
		fmt.Fprintf(&buf, " order by (%s)", s.Ordering)
	}
	return buf.String()
}
