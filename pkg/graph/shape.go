package graph

import (
	"github.com/matzehuels/nestgraph/pkg/errors"
)

// ConnectableShape is anything an edge endpoint may reference: a [*Node] or a
// [*Port]. Only types embedding *Node or *Port can satisfy it; any kind other
// than the two themselves is rejected by [ShapeToNode].
type ConnectableShape interface {
	Element
	IncomingEdges() []*Edge
	OutgoingEdges() []*Edge

	edges() *incidence
}

var (
	_ ConnectableShape = (*Node)(nil)
	_ ConnectableShape = (*Port)(nil)
)

// ShapeToNode returns the node a connectable shape belongs to: the shape
// itself for a node, the owning node for a port. An unattached port resolves
// to a nil node without error.
//
// Returns an error with code NULL_ARGUMENT for a nil shape and
// UNSUPPORTED_SHAPE_KIND for anything that is neither a node nor a port.
func ShapeToNode(s ConnectableShape) (*Node, error) {
	switch v := s.(type) {
	case nil:
		return nil, errors.New(errors.ErrCodeNullArgument, "shape cannot be nil")
	case *Node:
		if v == nil {
			return nil, errors.New(errors.ErrCodeNullArgument, "shape cannot be nil")
		}
		return v, nil
	case *Port:
		if v == nil {
			return nil, errors.New(errors.ErrCodeNullArgument, "shape cannot be nil")
		}
		return v.parent, nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupportedShapeKind, "only nodes and ports are connectable, got %T", s)
	}
}

// isNil reports whether e is nil or an interface holding a nil pointer.
func isNil(e Element) bool {
	switch v := e.(type) {
	case nil:
		return true
	case *Node:
		return v == nil
	case *Port:
		return v == nil
	case *Label:
		return v == nil
	case *Edge:
		return v == nil
	case *EdgeSection:
		return v == nil
	}
	return false
}
