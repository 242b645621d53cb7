package pipeline

import (
	"context"
	"fmt"
	"slices"

	"github.com/matzehuels/nestgraph/pkg/graph"
)

// Resolve audits the containment of every edge reachable from root. With
// recompute set, each edge's containing node is first recomputed from its
// endpoints. It returns the audit issues and the number of edges whose
// containing node changed.
func Resolve(ctx context.Context, root *graph.Node, recompute bool) ([]graph.ContainmentIssue, int, error) {
	changed := 0
	if recompute {
		// Collect first: reassigning containment edits the contained-edge
		// lists AllEdges walks.
		for _, e := range slices.Collect(graph.AllEdges(root)) {
			if err := ctx.Err(); err != nil {
				return nil, changed, err
			}
			before := e.ContainingNode()
			if err := graph.UpdateContainment(e); err != nil {
				return nil, changed, fmt.Errorf("edge %s: %w", e.ID(), err)
			}
			if e.ContainingNode() != before {
				changed++
			}
		}
	}

	issues, err := graph.CheckGraph(root)
	if err != nil {
		return nil, changed, err
	}
	return issues, changed, nil
}
