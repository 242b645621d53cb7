package pipeline

import (
	"context"

	"github.com/matzehuels/nestgraph/pkg/graph"
	"github.com/matzehuels/nestgraph/pkg/io"
)

// Import reads the document at opts.Path and builds its containment tree.
func Import(ctx context.Context, opts Options) (*graph.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return io.ImportFile(opts.Path)
}

// countElements returns the number of nodes and edges reachable from root.
func countElements(root *graph.Node) (nodes, edges int) {
	for range graph.AllNodes(root) {
		nodes++
	}
	for range graph.AllEdges(root) {
		edges++
	}
	return nodes, edges
}
