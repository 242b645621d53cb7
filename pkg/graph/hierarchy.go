package graph

import (
	"iter"
	"slices"

	"github.com/matzehuels/nestgraph/pkg/errors"
)

// SetParent moves n under parent. The node is removed from the child list of
// its previous parent and appended to the child list of parent; a nil parent
// detaches n and makes it a root. Setting the current parent again is a no-op
// and keeps the node's position among its siblings.
//
// Returns an error with code INVARIANT_VIOLATION if parent is n or one of its
// descendants, and NULL_ARGUMENT if n is nil. The tree is unchanged on error.
func (n *Node) SetParent(parent *Node) error {
	if n == nil {
		return errors.New(errors.ErrCodeNullArgument, "node cannot be nil")
	}
	if parent == n || IsDescendant(parent, n) {
		return errors.New(errors.ErrCodeInvariantViolation, "moving node %s under %s would create a cycle", describe(n), describe(parent))
	}
	if parent == n.parent {
		return nil
	}

	if old := n.parent; old != nil {
		old.children = slices.DeleteFunc(old.children, func(c *Node) bool { return c == n })
	}
	n.parent = parent
	if parent != nil {
		parent.children = append(parent.children, n)
	}
	return nil
}

// IsDescendant reports whether ancestor is reached by following child's
// parent chain. The relation is not reflexive: a node is not its own
// descendant. A nil child has no ancestors.
func IsDescendant(child, ancestor *Node) bool {
	if child == nil {
		return false
	}
	for cur := child.parent; cur != nil; cur = cur.parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// Ancestors returns an iterator over n's parent chain, nearest first. n itself
// is not included.
func Ancestors(n *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for cur := n.Parent(); cur != nil; cur = cur.parent {
			if !yield(cur) {
				return
			}
		}
	}
}

// Root returns the topmost ancestor of n, or n itself if it has no parent.
func Root(n *Node) *Node {
	if n == nil {
		return nil
	}
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Depth returns the number of ancestors of n. Roots have depth 0.
func Depth(n *Node) int {
	d := 0
	for range Ancestors(n) {
		d++
	}
	return d
}

// describe formats a node for error messages.
func describe(n *Node) string {
	switch {
	case n == nil:
		return "<nil>"
	case n.id != "":
		return n.id
	default:
		return "<anonymous>"
	}
}
