package plan

// Aggregation binds an output symbol to an aggregate function call.
type Aggregation struct {
	Output Symbol
	Call   *Call
}

// AggregateNode groups its source by the grouping symbols and computes one
// aggregate per entry. Outputs are the grouping symbols followed by the
// aggregate outputs.
type AggregateNode struct {
	NodeID       NodeID
	Source       Node
	GroupBy      []Symbol
	Aggregations []Aggregation
}

func (n *AggregateNode) ID() NodeID { return n.NodeID }

func (n *AggregateNode) Children() []Node { return []Node{n.Source} }

func (n *AggregateNode) OutputSymbols() []Symbol {
	out := make([]Symbol, 0, len(n.GroupBy)+len(n.Aggregations))
	out = append(out, n.GroupBy...)
	for _, agg := range n.Aggregations {
		out = append(out, agg.Output)
	}
	return out
}

func (n *AggregateNode) ReplaceChildren(children []Node) Node {
	checkChildCount(n, children, 1)
	return &AggregateNode{
		NodeID:       n.NodeID,
		Source:       children[0],
		GroupBy:      n.GroupBy,
		Aggregations: n.Aggregations,
	}
}
