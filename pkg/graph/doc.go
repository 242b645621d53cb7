// Package graph provides the hierarchical graph model consumed by layout
// algorithms: nodes nested in nodes, ports owned by nodes, labels attached to
// any element, and (hyper)edges whose routes are split into edge sections.
//
// # Overview
//
// The model is a single containment tree. A [Node] owns its child nodes, its
// [Port] values and its [Label] values; an [Edge] owns its [EdgeSection]
// values. Edges are not owned by the tree: they reference their endpoints
// (any [ConnectableShape], i.e. a node or a port) and a containing node.
//
// Every forward reference has a paired back-reference. When an edge gains a
// source, the source shape records the edge as outgoing; when a node is moved
// with [Node.SetParent], it leaves the child list of its old parent in the
// same call. Back-references are only written by this package, so a tree
// built through its operations is never observably inconsistent.
//
// # Basic Usage
//
// Build the tree with the construction functions and let the package pick
// each edge's containing node:
//
//	root := graph.CreateGraph()
//	a := graph.CreateNode(root)
//	b := graph.CreateNode(root)
//	e, err := graph.CreateSimpleEdge(a, b)
//	// e.ContainingNode() == root
//
// # Edge Containment
//
// The containing node of an edge defines the coordinate system its route is
// expressed in. [FindBestEdgeContainment] derives it from the endpoints:
// single-endpoint edges live in the parent of their node, simple edges
// between siblings live in the shared parent, edges between a node and its
// direct child live in the parent-side node, and everything else is folded
// greedily over the incident nodes. The fold only promotes on sibling or
// ancestor relations, so for some hyperedges it returns a node that does not
// contain every endpoint. [CheckContainment] and [CheckGraph] detect these
// cases and report the true lowest common ancestor.
//
// # Incidence Queries
//
// [AllIncomingEdges], [AllOutgoingEdges], [AllIncidentShapes] and
// [AllIncidentSections] return iterators. They are recomputed from the live
// back-references every time they are ranged over, so mutations are visible
// immediately and nothing is cached.
//
// # Concurrency
//
// Graphs are not safe for concurrent use. All operations are synchronous
// pointer walks; callers that share a graph between goroutines must serialize
// every mutation and query themselves.
package graph
