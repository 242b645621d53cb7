package graph

import (
	"fmt"
	"slices"
)

// ContainmentIssue describes an edge whose containing node does not contain
// every endpoint.
type ContainmentIssue struct {
	Edge *Edge
	// Containing is the edge's current containing node.
	Containing *Node
	// Expected is the lowest node containing every endpoint, nil if the
	// endpoints only meet above the top-level nodes.
	Expected *Node
	// Uncovered lists the endpoint nodes outside Containing, without
	// duplicates.
	Uncovered []*Node
}

// String formats the issue for reports.
func (c ContainmentIssue) String() string {
	return fmt.Sprintf("edge %s: contained in %s, expected %s (%d endpoint(s) outside)",
		describeEdge(c.Edge), describe(c.Containing), describe(c.Expected), len(c.Uncovered))
}

// LowestCommonAncestor returns the deepest node that is an ancestor-or-self
// of every given node. It returns nil if no nodes are given, if any node is
// nil, or if the nodes belong to different trees.
func LowestCommonAncestor(nodes ...*Node) *Node {
	if len(nodes) == 0 || slices.Contains(nodes, nil) {
		return nil
	}

	// Path from the first node up to its root; trimmed from below as
	// further nodes are merged in.
	path := []*Node{nodes[0]}
	for a := range Ancestors(nodes[0]) {
		path = append(path, a)
	}
	lowest := 0
	for _, n := range nodes[1:] {
		idx := -1
		for cur := n; idx < 0 && cur != nil; cur = cur.parent {
			idx = slices.Index(path, cur)
		}
		if idx < 0 {
			return nil
		}
		lowest = max(lowest, idx)
	}
	return path[lowest]
}

// ExpectedContainment returns the node that contains every endpoint of e
// most tightly: the lowest common ancestor of the endpoint nodes, or its
// parent when all endpoints resolve to the same node. Edges without
// endpoints, or with endpoints in different trees, yield nil.
func ExpectedContainment(e *Edge) (*Node, error) {
	nodes, err := endpointNodes(e)
	if err != nil || len(nodes) == 0 {
		return nil, err
	}
	lca := LowestCommonAncestor(nodes...)
	if lca != nil && !slices.ContainsFunc(nodes, func(n *Node) bool { return n != lca }) {
		return lca.parent, nil
	}
	return lca, nil
}

// CheckContainment reports whether e's containing node contains every
// endpoint node (as ancestor-or-self). A nil containing node stands for the
// space above the top-level nodes and contains everything. The returned issue
// is nil when the containment is sound or the edge has no endpoints.
func CheckContainment(e *Edge) (*ContainmentIssue, error) {
	nodes, err := endpointNodes(e)
	if err != nil {
		return nil, err
	}

	var uncovered []*Node
	for _, n := range nodes {
		if !contains(e.containing, n) && !slices.Contains(uncovered, n) {
			uncovered = append(uncovered, n)
		}
	}
	if len(uncovered) == 0 {
		return nil, nil
	}

	expected, err := ExpectedContainment(e)
	if err != nil {
		return nil, err
	}
	return &ContainmentIssue{
		Edge:       e,
		Containing: e.containing,
		Expected:   expected,
		Uncovered:  uncovered,
	}, nil
}

// CheckGraph runs [CheckContainment] on every edge reachable from root and
// returns the issues in [AllEdges] order.
func CheckGraph(root *Node) ([]ContainmentIssue, error) {
	var issues []ContainmentIssue
	for e := range AllEdges(root) {
		issue, err := CheckContainment(e)
		if err != nil {
			return nil, fmt.Errorf("edge %s: %w", describeEdge(e), err)
		}
		if issue != nil {
			issues = append(issues, *issue)
		}
	}
	return issues, nil
}

// contains reports whether a is n or one of its ancestors; nil contains all.
func contains(a, n *Node) bool {
	return a == nil || a == n || IsDescendant(n, a)
}

func endpointNodes(e *Edge) ([]*Node, error) {
	nodes := make([]*Node, 0, len(e.sources)+len(e.targets))
	for s := range AllIncidentShapes(e) {
		n, err := ShapeToNode(s)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func describeEdge(e *Edge) string {
	if e.id != "" {
		return e.id
	}
	return "<anonymous>"
}
