// Package pkg provides the core libraries for nestgraph.
//
// # Overview
//
// nestgraph models hierarchical graphs: nodes nested in nodes, ports on
// nodes, labels, and edges or hyperedges that connect any of them. Every
// edge lives inside a containing node, and the libraries keep that
// assignment consistent with the hierarchy. The pkg directory is organized
// into these areas:
//
//  1. [graph] - The element model, incidence and containment logic
//  2. [io] - JSON and YAML document import
//  3. [render/nodelink] - Clustered Graphviz diagrams
//  4. [pipeline] - Orchestration (import → resolve → render)
//  5. [cache] - Artifact caching
//  6. [observability] - Pipeline and cache hooks
//
// # Architecture
//
// The typical data flow through nestgraph:
//
//	JSON/YAML document
//	         ↓
//	    [io] package (build the containment tree)
//	         ↓
//	    [graph] package (recompute and audit edge containment)
//	         ↓
//	    [render/nodelink] package (DOT, then SVG via Graphviz)
//
// # Quick Start
//
//	root, err := io.ImportFile("system.yaml")
//	if err != nil {
//	    return err
//	}
//	for _, e := range slices.Collect(graph.AllEdges(root)) {
//	    if _, err := e.UpdateContainment(); err != nil {
//	        return err
//	    }
//	}
//	dot := nodelink.ToDOT(root, nodelink.Options{Direction: nodelink.LeftToRight})
//
// Most callers use [pipeline.Runner], which runs the same steps with caching
// and observability hooks.
package pkg
