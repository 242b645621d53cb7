package graph

// Properties stores arbitrary key-value pairs attached to a graph element.
// Layout algorithms use it for their options and intermediate results.
type Properties map[string]any

// Point is a position in the coordinate system of an element's container.
type Point struct {
	X, Y float64
}

// Rect is the position and size of a shape relative to its container.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Element is the capability set shared by every element of the graph model:
// nodes, ports, labels, edges and edge sections.
type Element interface {
	// ID returns the element's identifier, or "" if none was assigned.
	ID() string
	// SetID assigns an identifier. Identifiers are not checked for uniqueness.
	SetID(id string)
	// Props returns the element's property map. It is never nil.
	Props() Properties
	// Labels returns the labels attached to the element, in creation order.
	Labels() []*Label
	// Owner returns the element this element is nested in, or nil.
	Owner() Element

	base() *element
}

// element holds the state common to all element kinds.
type element struct {
	id     string
	props  Properties
	labels []*Label
}

func (e *element) ID() string       { return e.id }
func (e *element) SetID(id string)  { e.id = id }
func (e *element) Labels() []*Label { return e.labels }
func (e *element) base() *element   { return e }

func (e *element) Props() Properties {
	if e.props == nil {
		e.props = Properties{}
	}
	return e.props
}

// incidence holds the edge back-references of a connectable shape.
type incidence struct {
	incoming []*Edge
	outgoing []*Edge
}

// IncomingEdges returns the edges that have the shape as a target.
// The returned slice should not be modified - use it as a read-only view.
func (i *incidence) IncomingEdges() []*Edge { return i.incoming }

// OutgoingEdges returns the edges that have the shape as a source.
// The returned slice should not be modified - use it as a read-only view.
func (i *incidence) OutgoingEdges() []*Edge { return i.outgoing }

func (i *incidence) edges() *incidence { return i }

// Node is a vertex of the containment tree. It owns its child nodes, ports
// and labels, and records the edges connected to it directly (not through one
// of its ports).
//
// The zero value is an unattached node; prefer [CreateNode].
type Node struct {
	element
	incidence

	// Bounds is written by layout algorithms.
	Bounds Rect

	parent    *Node
	children  []*Node
	ports     []*Port
	contained []*Edge
}

// Parent returns the node's parent, or nil for a root. Parent is nil-safe so
// the result of resolving an unattached port can be queried without checks.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Children returns the child nodes in insertion order.
// The returned slice should not be modified - use it as a read-only view.
func (n *Node) Children() []*Node { return n.children }

// Ports returns the node's ports in creation order.
// The returned slice should not be modified - use it as a read-only view.
func (n *Node) Ports() []*Port { return n.ports }

// ContainedEdges returns the edges whose containing node is n.
// The returned slice should not be modified - use it as a read-only view.
func (n *Node) ContainedEdges() []*Edge { return n.contained }

// IsHierarchical reports whether the node has child nodes.
func (n *Node) IsHierarchical() bool { return len(n.children) > 0 }

// Owner returns the parent node as an [Element], or nil for a root.
func (n *Node) Owner() Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Port is a connection point on the border of exactly one node.
type Port struct {
	element
	incidence

	// Bounds is written by layout algorithms, relative to the owning node.
	Bounds Rect

	parent *Node
}

// Parent returns the node owning the port, or nil for an unattached port.
func (p *Port) Parent() *Node { return p.parent }

// Owner returns the owning node as an [Element], or nil.
func (p *Port) Owner() Element {
	if p.parent == nil {
		return nil
	}
	return p.parent
}

// Label is a leaf element carrying text for another element.
type Label struct {
	element

	// Text is the label's content.
	Text string
	// Bounds is written by layout algorithms.
	Bounds Rect

	parent Element
}

// Parent returns the element the label is attached to, or nil.
func (l *Label) Parent() Element { return l.parent }

// Owner is equivalent to [Label.Parent].
func (l *Label) Owner() Element { return l.parent }

// Edge connects one or more source shapes to one or more target shapes. An
// edge with more than one source or more than one target is a hyperedge.
// Sources and targets are associations into the tree, not ownership.
type Edge struct {
	element

	sources    []ConnectableShape
	targets    []ConnectableShape
	containing *Node
	sections   []*EdgeSection
}

// Sources returns the source shapes in the order they were added.
// The returned slice should not be modified - use it as a read-only view.
func (e *Edge) Sources() []ConnectableShape { return e.sources }

// Targets returns the target shapes in the order they were added.
// The returned slice should not be modified - use it as a read-only view.
func (e *Edge) Targets() []ConnectableShape { return e.targets }

// Sections returns the sections describing the edge's route.
func (e *Edge) Sections() []*EdgeSection { return e.sections }

// ContainingNode returns the node whose coordinate system the edge's route is
// expressed in. It is nil for an edge between top-level nodes.
func (e *Edge) ContainingNode() *Node { return e.containing }

// Owner returns the containing node as an [Element], or nil.
func (e *Edge) Owner() Element {
	if e.containing == nil {
		return nil
	}
	return e.containing
}

// IsHyperedge reports whether the edge has more than one source or target.
func (e *Edge) IsHyperedge() bool { return len(e.sources) > 1 || len(e.targets) > 1 }

// IsSelfLoop reports whether every endpoint resolves to one and the same node.
func (e *Edge) IsSelfLoop() bool {
	var first *Node
	for i, s := range e.endpoints() {
		n, err := ShapeToNode(s)
		if err != nil {
			return false
		}
		if i == 0 {
			first = n
		} else if n != first {
			return false
		}
	}
	return len(e.sources)+len(e.targets) > 1
}

func (e *Edge) endpoints() []ConnectableShape {
	all := make([]ConnectableShape, 0, len(e.sources)+len(e.targets))
	all = append(all, e.sources...)
	return append(all, e.targets...)
}

// EdgeSection is one segment of an edge's route. Sections of a hyperedge are
// chained through incoming and outgoing section references.
type EdgeSection struct {
	element

	// Start, End and Bends are written by edge routers.
	Start Point
	End   Point
	Bends []Point

	parent   *Edge
	incoming []*EdgeSection
	outgoing []*EdgeSection
}

// Parent returns the edge owning the section.
func (s *EdgeSection) Parent() *Edge { return s.parent }

// Owner returns the owning edge as an [Element], or nil.
func (s *EdgeSection) Owner() Element {
	if s.parent == nil {
		return nil
	}
	return s.parent
}

// IncomingSections returns the sections whose route continues into s.
func (s *EdgeSection) IncomingSections() []*EdgeSection { return s.incoming }

// OutgoingSections returns the sections s continues into.
func (s *EdgeSection) OutgoingSections() []*EdgeSection { return s.outgoing }
