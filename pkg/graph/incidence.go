package graph

import "iter"

// AllIncomingEdges returns an iterator over every edge entering n, whether
// connected to the node directly or through one of its ports. Edges connected
// directly come first, followed by each port's edges in port order.
//
// The sequence is rebuilt from the live back-references on every range, so it
// reflects mutations made after AllIncomingEdges was called.
func AllIncomingEdges(n *Node) iter.Seq[*Edge] {
	return func(yield func(*Edge) bool) {
		if !yieldAll(n.incoming, yield) {
			return
		}
		for _, p := range n.ports {
			if !yieldAll(p.incoming, yield) {
				return
			}
		}
	}
}

// AllOutgoingEdges returns an iterator over every edge leaving n, whether
// connected to the node directly or through one of its ports. Ordering and
// liveness are as for [AllIncomingEdges].
func AllOutgoingEdges(n *Node) iter.Seq[*Edge] {
	return func(yield func(*Edge) bool) {
		if !yieldAll(n.outgoing, yield) {
			return
		}
		for _, p := range n.ports {
			if !yieldAll(p.outgoing, yield) {
				return
			}
		}
	}
}

// AllIncidentShapes returns an iterator over the edge's sources followed by
// its targets. Duplicates are reported as often as they occur.
func AllIncidentShapes(e *Edge) iter.Seq[ConnectableShape] {
	return func(yield func(ConnectableShape) bool) {
		if yieldAll(e.sources, yield) {
			yieldAll(e.targets, yield)
		}
	}
}

// AllIncidentSections returns an iterator over the section's incoming
// sections followed by its outgoing sections.
func AllIncidentSections(s *EdgeSection) iter.Seq[*EdgeSection] {
	return func(yield func(*EdgeSection) bool) {
		if yieldAll(s.incoming, yield) {
			yieldAll(s.outgoing, yield)
		}
	}
}

// yieldAll feeds items to yield and reports whether iteration should go on.
func yieldAll[T any](items []T, yield func(T) bool) bool {
	for _, item := range items {
		if !yield(item) {
			return false
		}
	}
	return true
}
