package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/nestgraph/pkg/graph"
	"github.com/matzehuels/nestgraph/pkg/render/nodelink"
)

// RenderDOT generates the Graphviz source for root.
func RenderDOT(root *graph.Node, opts Options) string {
	return nodelink.ToDOT(root, opts.RenderOptions())
}

// RenderArtifact converts DOT source to the requested output format.
func RenderArtifact(ctx context.Context, dot string, format string) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		svg, err := nodelink.RenderSVG(ctx, dot)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		return svg, nil
	}
	return nil, ValidateFormat(format)
}
