package plan

import (
	"bytes"
	"fmt"
)

// Format renders a plan tree as indented text, one row per node. It is a
// diagnostic surface: the output is consumed by humans and test failures,
// not by other components. Group references render as "group N" without
// resolving; callers that want a fully materialized rendering extract the
// tree from the memo first.
func Format(n Node) string {
	tp := makeTreePrinter()
	formatNode(&tp, n)
	return tp.String()
}

func formatNode(tp *treePrinter, n Node) {
	tp.Add(describe(n))
	children := n.Children()
	if len(children) == 0 {
		return
	}
	tp.Enter()
	for _, child := range children {
		formatNode(tp, child)
	}
	tp.Exit()
}

func describe(n Node) string {
	switch t := n.(type) {
	case *ScanNode:
		return fmt.Sprintf("scan %s %s", t.Table, formatSymbols(t.Columns))
	case *FilterNode:
		return fmt.Sprintf("filter %s", t.Predicate)
	case *ProjectNode:
		var buf bytes.Buffer
		buf.WriteString("project ")
		for i, a := range t.Assignments {
			if i > 0 {
				buf.WriteString(", ")
			}
			if ref, ok := a.Expression.(*SymbolReference); ok && ref.Symbol == a.Symbol {
				buf.WriteString(a.Symbol.Name)
			} else {
				fmt.Fprintf(&buf, "%s := %s", a.Symbol, a.Expression)
			}
		}
		return buf.String()
	case *JoinNode:
		var buf bytes.Buffer
		fmt.Fprintf(&buf, "%s join", t.Type)
		for i, c := range t.Criteria {
			if i == 0 {
				buf.WriteString(" on ")
			} else {
				buf.WriteString(" and ")
			}
			fmt.Fprintf(&buf, "%s = %s", c.Left, c.Right)
		}
		return buf.String()
	case *AggregateNode:
		var buf bytes.Buffer
		fmt.Fprintf(&buf, "aggregate %s", formatSymbols(t.GroupBy))
		for _, agg := range t.Aggregations {
			fmt.Fprintf(&buf, " %s := %s", agg.Output, agg.Call)
		}
		return buf.String()
	case *WindowNode:
		var buf bytes.Buffer
		fmt.Fprintf(&buf, "window %s", t.Spec)
		for _, fn := range t.Functions {
			fmt.Fprintf(&buf, " %s := %s [%s]", fn.Output, fn.Call, fn.Frame)
		}
		return buf.String()
	case *SortNode:
		return fmt.Sprintf("sort (%s)", t.Ordering)
	case *LimitNode:
		return fmt.Sprintf("limit %d", t.Count)
	case *UnionNode:
		return fmt.Sprintf("union %s", formatSymbols(t.Outputs))
	case *UnnestNode:
		return fmt.Sprintf("unnest %s -> %s", formatSymbols(t.Replicate), formatSymbols(t.Unnested))
	case *ValuesNode:
		return fmt.Sprintf("values %s (%d rows)", formatSymbols(t.Columns), len(t.Rows))
	case *GroupReference:
		return t.String()
	}
	panic(fmt.Sprintf("unhandled node type %T", n))
}

func formatSymbols(symbols []Symbol) string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, s := range symbols {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(s.Name)
	}
	buf.WriteByte(']')
	return buf.String()
}
