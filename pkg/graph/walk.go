package graph

import "iter"

// AllNodes returns an iterator over root and all its descendants in
// pre-order, children in insertion order.
func AllNodes(root *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if root != nil {
			walkNodes(root, yield)
		}
	}
}

func walkNodes(n *Node, yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, c := range n.children {
		if !walkNodes(c, yield) {
			return false
		}
	}
	return true
}

// AllEdges returns an iterator over every edge reachable from the tree rooted
// at root: edges contained in one of its nodes and edges connected to one of
// its nodes or ports. Each edge is reported once, in the pre-order of the
// first node that references it.
func AllEdges(root *Node) iter.Seq[*Edge] {
	return func(yield func(*Edge) bool) {
		seen := make(map[*Edge]bool)
		visit := func(e *Edge) bool {
			if seen[e] {
				return true
			}
			seen[e] = true
			return yield(e)
		}
		for n := range AllNodes(root) {
			for _, e := range n.contained {
				if !visit(e) {
					return
				}
			}
			for e := range AllOutgoingEdges(n) {
				if !visit(e) {
					return
				}
			}
			for e := range AllIncomingEdges(n) {
				if !visit(e) {
					return
				}
			}
		}
	}
}
