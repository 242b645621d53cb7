package graph

import (
	"github.com/matzehuels/nestgraph/pkg/errors"
)

// UpdateContainment sets the edge's containing node to the result of
// [FindBestEdgeContainment].
func UpdateContainment(e *Edge) error {
	if e == nil {
		return errors.New(errors.ErrCodeNullArgument, "edge cannot be nil")
	}
	n, err := FindBestEdgeContainment(e)
	if err != nil {
		return err
	}
	e.SetContainingNode(n)
	return nil
}

// FindBestEdgeContainment computes the node an edge should be contained in
// from its current endpoints.
//
//   - An edge with a single endpoint belongs to the parent of that endpoint's
//     node.
//   - A simple edge between siblings belongs to their shared parent (nil for
//     two top-level nodes); a simple edge between a node and its direct child
//     belongs to the parent-side node.
//   - Otherwise the incident nodes are folded into a candidate, starting with
//     the first. A node already inside the candidate leaves it unchanged, a
//     sibling of the candidate promotes it to the shared parent, and an
//     ancestor of the candidate replaces it.
//
// The fold never looks further up than one sibling or ancestor step, so the
// result is not guaranteed to contain every endpoint; see [CheckContainment].
//
// Returns an error with code INVALID_EDGE if the edge has no endpoints.
func FindBestEdgeContainment(e *Edge) (*Node, error) {
	if e == nil {
		return nil, errors.New(errors.ErrCodeNullArgument, "edge cannot be nil")
	}

	switch len(e.sources) + len(e.targets) {
	case 0:
		return nil, errors.New(errors.ErrCodeInvalidEdge, "the edge must have at least one source or target")
	case 1:
		only := e.sources
		if len(e.targets) > 0 {
			only = e.targets
		}
		n, err := ShapeToNode(only[0])
		if err != nil {
			return nil, err
		}
		return n.Parent(), nil
	}

	if len(e.sources) == 1 && len(e.targets) == 1 {
		s, err := ShapeToNode(e.sources[0])
		if err != nil {
			return nil, err
		}
		t, err := ShapeToNode(e.targets[0])
		if err != nil {
			return nil, err
		}
		switch {
		case s.Parent() == t.Parent():
			return s.Parent(), nil
		case s == t.Parent():
			return s, nil
		case t == s.Parent():
			return t, nil
		}
	}

	var candidate *Node
	first := true
	for shape := range AllIncidentShapes(e) {
		n, err := ShapeToNode(shape)
		if err != nil {
			return nil, err
		}
		if first {
			candidate, first = n, false
			continue
		}
		switch {
		case n == candidate || IsDescendant(n, candidate):
			// already covered
		case n.Parent() == candidate.Parent():
			candidate = n.Parent()
		case IsDescendant(candidate, n):
			candidate = n
		}
	}
	return candidate, nil
}
