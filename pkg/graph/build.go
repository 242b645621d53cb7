package graph

import (
	"iter"
	"slices"

	"github.com/matzehuels/nestgraph/pkg/errors"
)

// CreateGraph creates a parentless node that represents a whole graph.
func CreateGraph() *Node {
	return CreateNode(nil)
}

// CreateNode creates a node and, if parent is non-nil, appends it to the
// parent's children.
func CreateNode(parent *Node) *Node {
	n := &Node{}
	if parent != nil {
		// A fresh node has no descendants, so this cannot form a cycle.
		_ = n.SetParent(parent)
	}
	return n
}

// CreatePort creates a port owned by parent. A nil parent yields an
// unattached port, which resolves to a nil node in [ShapeToNode]. The owner of
// a port is fixed at creation.
func CreatePort(parent *Node) *Port {
	p := &Port{parent: parent}
	if parent != nil {
		parent.ports = append(parent.ports, p)
	}
	return p
}

// CreateLabel creates a label attached to parent, which may be any element.
// A nil parent yields an unattached label.
func CreateLabel(parent Element) *Label {
	l := &Label{}
	if !isNil(parent) {
		b := parent.base()
		b.labels = append(b.labels, l)
		l.parent = parent
	}
	return l
}

// CreateEdge creates an edge without endpoints. A non-nil containingNode is
// set as is; choosing one consistent with the endpoints added later is up to
// the caller, or to [UpdateContainment] once they are connected.
func CreateEdge(containingNode *Node) *Edge {
	e := &Edge{}
	if containingNode != nil {
		e.SetContainingNode(containingNode)
	}
	return e
}

// CreateSimpleEdge creates an edge from source to target and sets its
// containing node with [UpdateContainment].
//
// Returns an error with code NULL_ARGUMENT if either shape is nil; nothing is
// created in that case.
func CreateSimpleEdge(source, target ConnectableShape) (*Edge, error) {
	if isNil(source) {
		return nil, errors.New(errors.ErrCodeNullArgument, "source cannot be nil")
	}
	if isNil(target) {
		return nil, errors.New(errors.ErrCodeNullArgument, "target cannot be nil")
	}

	e := CreateEdge(nil)
	e.addSource(source)
	e.addTarget(target)
	if err := UpdateContainment(e); err != nil {
		e.disconnectAll()
		return nil, err
	}
	return e, nil
}

// CreateHyperedge creates an edge connecting all sources to all targets, in
// iteration order, and sets its containing node with [UpdateContainment].
// Shapes may repeat within or across the sequences; every occurrence is kept.
//
// Returns an error with code NULL_ARGUMENT if either sequence or any shape in
// them is nil, and INVALID_EDGE if both sequences are empty. Nothing is
// created on error.
func CreateHyperedge(sources, targets iter.Seq[ConnectableShape]) (*Edge, error) {
	if sources == nil {
		return nil, errors.New(errors.ErrCodeNullArgument, "sources cannot be nil")
	}
	if targets == nil {
		return nil, errors.New(errors.ErrCodeNullArgument, "targets cannot be nil")
	}

	srcs := slices.Collect(sources)
	tgts := slices.Collect(targets)
	if i := slices.IndexFunc(srcs, func(s ConnectableShape) bool { return isNil(s) }); i >= 0 {
		return nil, errors.New(errors.ErrCodeNullArgument, "source %d cannot be nil", i)
	}
	if i := slices.IndexFunc(tgts, func(s ConnectableShape) bool { return isNil(s) }); i >= 0 {
		return nil, errors.New(errors.ErrCodeNullArgument, "target %d cannot be nil", i)
	}
	if len(srcs)+len(tgts) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidEdge, "the edge must have at least one source or target")
	}

	e := CreateEdge(nil)
	for _, s := range srcs {
		e.addSource(s)
	}
	for _, t := range tgts {
		e.addTarget(t)
	}
	if err := UpdateContainment(e); err != nil {
		e.disconnectAll()
		return nil, err
	}
	return e, nil
}

// CreateEdgeSection creates a route section owned by edge.
// Returns nil if edge is nil.
func CreateEdgeSection(edge *Edge) *EdgeSection {
	if edge == nil {
		return nil
	}
	s := &EdgeSection{parent: edge}
	edge.sections = append(edge.sections, s)
	return s
}

// ConnectSections records that the route continues from section from into
// section to, updating both sides.
//
// Returns an error with code NULL_ARGUMENT if either section is nil.
func ConnectSections(from, to *EdgeSection) error {
	if from == nil || to == nil {
		return errors.New(errors.ErrCodeNullArgument, "sections cannot be nil")
	}
	from.outgoing = append(from.outgoing, to)
	to.incoming = append(to.incoming, from)
	return nil
}

// SetContainingNode sets the edge's containing node without validation and
// moves the edge between the nodes' contained-edge lists.
func (e *Edge) SetContainingNode(n *Node) {
	if n == e.containing {
		return
	}
	if old := e.containing; old != nil {
		old.contained = slices.DeleteFunc(old.contained, func(c *Edge) bool { return c == e })
	}
	e.containing = n
	if n != nil {
		n.contained = append(n.contained, e)
	}
}

// AddSource appends s to the edge's sources and records the edge as outgoing
// on s. The containing node is not updated; call [UpdateContainment] after
// reconnecting.
func (e *Edge) AddSource(s ConnectableShape) error {
	if isNil(s) {
		return errors.New(errors.ErrCodeNullArgument, "source cannot be nil")
	}
	e.addSource(s)
	return nil
}

// AddTarget appends t to the edge's targets and records the edge as incoming
// on t. The containing node is not updated.
func (e *Edge) AddTarget(t ConnectableShape) error {
	if isNil(t) {
		return errors.New(errors.ErrCodeNullArgument, "target cannot be nil")
	}
	e.addTarget(t)
	return nil
}

// RemoveSource removes the first occurrence of s from the edge's sources
// together with one matching back-reference on s. It reports whether s was a
// source.
func (e *Edge) RemoveSource(s ConnectableShape) bool {
	i := slices.Index(e.sources, s)
	if i < 0 {
		return false
	}
	e.sources = slices.Delete(e.sources, i, i+1)
	inc := s.edges()
	inc.outgoing = removeOne(inc.outgoing, e)
	return true
}

// RemoveTarget removes the first occurrence of t from the edge's targets
// together with one matching back-reference on t. It reports whether t was a
// target.
func (e *Edge) RemoveTarget(t ConnectableShape) bool {
	i := slices.Index(e.targets, t)
	if i < 0 {
		return false
	}
	e.targets = slices.Delete(e.targets, i, i+1)
	inc := t.edges()
	inc.incoming = removeOne(inc.incoming, e)
	return true
}

func (e *Edge) addSource(s ConnectableShape) {
	e.sources = append(e.sources, s)
	inc := s.edges()
	inc.outgoing = append(inc.outgoing, e)
}

func (e *Edge) addTarget(t ConnectableShape) {
	e.targets = append(e.targets, t)
	inc := t.edges()
	inc.incoming = append(inc.incoming, e)
}

// disconnectAll undoes every endpoint and containment link of e.
func (e *Edge) disconnectAll() {
	for len(e.sources) > 0 {
		e.RemoveSource(e.sources[0])
	}
	for len(e.targets) > 0 {
		e.RemoveTarget(e.targets[0])
	}
	e.SetContainingNode(nil)
}

func removeOne(edges []*Edge, e *Edge) []*Edge {
	if i := slices.Index(edges, e); i >= 0 {
		return slices.Delete(edges, i, i+1)
	}
	return edges
}
