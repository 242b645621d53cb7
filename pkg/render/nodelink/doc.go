// Package nodelink renders a containment tree as a node-link diagram.
//
// # Overview
//
// This package produces Graphviz DOT source from a [graph.Node] tree. The
// nesting of the output follows the tree: every hierarchical node (and every
// node with ports) becomes a cluster, and every edge is written into the
// cluster of its containing node. Reading the DOT therefore shows exactly the
// coordinate system each edge will be routed in.
//
// # Usage
//
//	dot := nodelink.ToDOT(root, nodelink.Options{Direction: nodelink.LeftToRight})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: node labels include the identifier and all properties, and
//     edges whose containing node misses an endpoint are drawn dashed red
//   - Direction: Graphviz rank direction (TB, LR, BT, RL)
//
// # Shapes
//
// Leaf nodes are rounded boxes. Ports are small filled circles inside their
// node's cluster. Edges ending on a cluster attach to an invisible anchor and
// are clipped at the cluster border. Hyperedges fan in to and out of a
// junction point.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
