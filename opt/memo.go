package opt

import (
	"github.com/cockroachdb/errors"

	"github.com/kumar-anish/presto/plan"
)

// Memo is the single owning store of plan nodes for one optimization pass.
// Each node of the input tree gets its own group; group indices translate to
// the group's current representative node, whose children are group
// references rather than materialized nodes. Rewrites swap a group's
// representative without touching any other group, which is what makes
// structure-sharing rewrites safe: parents hold indices, not pointers into
// subtrees that might be replaced.
//
// Group 0 is reserved and invalid so a zero GroupID never aliases a real
// group.
type Memo struct {
	groups []plan.Node
	ids    *plan.NodeIDAllocator
}

func NewMemo(ids *plan.NodeIDAllocator) *Memo {
	// NB: index 0 is the reserved invalid group.
	return &Memo{groups: make([]plan.Node, 1), ids: ids}
}

// Insert memoizes a materialized tree: every node becomes a group whose
// representative has group references for children. It returns the root's
// group. Inserting a group reference returns its group unchanged.
func (m *Memo) Insert(node plan.Node) plan.GroupID {
	if ref, ok := node.(*plan.GroupReference); ok {
		return ref.Group
	}
	rep := m.referenceChildren(node)
	id := plan.GroupID(len(m.groups))
	m.groups = append(m.groups, rep)
	return id
}

// referenceChildren returns a copy of node with each materialized child
// replaced by a reference to a (possibly new) group.
func (m *Memo) referenceChildren(node plan.Node) plan.Node {
	children := node.Children()
	if len(children) == 0 {
		return node
	}
	refs := make([]plan.Node, len(children))
	changed := false
	for i, child := range children {
		if ref, ok := child.(*plan.GroupReference); ok {
			refs[i] = ref
			continue
		}
		group := m.Insert(child)
		refs[i] = &plan.GroupReference{
			NodeID:  m.ids.Next(),
			Group:   group,
			Outputs: child.OutputSymbols(),
		}
		changed = true
	}
	if !changed {
		return node
	}
	return node.ReplaceChildren(refs)
}

// Representative returns the group's current representative node.
func (m *Memo) Representative(group plan.GroupID) (plan.Node, error) {
	if group <= 0 || int(group) >= len(m.groups) || m.groups[group] == nil {
		return nil, errors.Wrapf(ErrUnresolvedGroup, "group %d", group)
	}
	return m.groups[group], nil
}

// Replace installs a new representative for the group. Materialized children
// of the replacement are memoized into groups of their own.
func (m *Memo) Replace(group plan.GroupID, node plan.Node) error {
	if group <= 0 || int(group) >= len(m.groups) {
		return errors.Wrapf(ErrUnresolvedGroup, "group %d", group)
	}
	if ref, ok := node.(*plan.GroupReference); ok {
		// A rule may return a bare reference, e.g. when it elides its input
		// node entirely. Alias the group to the referenced representative.
		rep, err := m.Representative(ref.Group)
		if err != nil {
			return err
		}
		m.groups[group] = rep
		return nil
	}
	m.groups[group] = m.referenceChildren(node)
	return nil
}

// Extract materializes the tree rooted at the group, resolving every group
// reference to its current representative.
func (m *Memo) Extract(group plan.GroupID) (plan.Node, error) {
	rep, err := m.Representative(group)
	if err != nil {
		return nil, err
	}
	return m.extractNode(rep)
}

func (m *Memo) extractNode(node plan.Node) (plan.Node, error) {
	if ref, ok := node.(*plan.GroupReference); ok {
		return m.Extract(ref.Group)
	}
	children := node.Children()
	if len(children) == 0 {
		return node, nil
	}
	materialized := make([]plan.Node, len(children))
	changed := false
	for i, child := range children {
		c, err := m.extractNode(child)
		if err != nil {
			return nil, err
		}
		materialized[i] = c
		if c != child {
			changed = true
		}
	}
	if !changed {
		return node, nil
	}
	return node.ReplaceChildren(materialized), nil
}
