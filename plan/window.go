package plan

// WindowFunction is one windowed computation: the output symbol it creates,
// the function call and its per-function frame. All functions on a node
// share the node's specification; frames may differ per function.
type WindowFunction struct {
	Output Symbol
	Call   *Call
	Frame  Frame
}

// WindowNode evaluates a set of window functions over a common partitioning
// and ordering. Outputs are the source's columns followed by one column per
// function; a window never removes columns.
type WindowNode struct {
	NodeID    NodeID
	Source    Node
	Spec      Specification
	Functions []WindowFunction
}

func (n *WindowNode) ID() NodeID { return n.NodeID }

func (n *WindowNode) Children() []Node { return []Node{n.Source} }

func (n *WindowNode) OutputSymbols() []Symbol {
	source := n.Source.OutputSymbols()
	out := make([]Symbol, 0, len(source)+len(n.Functions))
	out = append(out, source...)
	for _, fn := range n.Functions {
		out = append(out, fn.Output)
	}
	return out
}

func (n *WindowNode) ReplaceChildren(children []Node) Node {
	checkChildCount(n, children, 1)
	return &WindowNode{
		NodeID:    n.NodeID,
		Source:    children[0],
		Spec:      n.Spec,
		Functions: n.Functions,
	}
}

// CreatedSymbols returns the set of symbols the window's functions produce.
func (n *WindowNode) CreatedSymbols() SymbolSet {
	set := make(SymbolSet, len(n.Functions))
	for _, fn := range n.Functions {
		set[fn.Output] = struct{}{}
	}
	return set
}

// ReferencedSymbols returns every symbol the window reads: partition and
// ordering keys, function arguments and frame offsets. Function outputs are
// not included.
func (n *WindowNode) ReferencedSymbols() SymbolSet {
	set := n.Spec.ReferencedSymbols()
	for _, fn := range n.Functions {
		for _, arg := range fn.Call.Args {
			for _, s := range arg.ReferencedSymbols(nil) {
				set[s] = struct{}{}
			}
		}
		for s := range fn.Frame.ReferencedSymbols() {
			set[s] = struct{}{}
		}
	}
	return set
}
