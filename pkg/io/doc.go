// Package io builds graph models from JSON or YAML authoring documents.
//
// # Overview
//
// The graph model defines no file format of its own. This package is a
// one-way authoring adapter: it decodes a nested document describing nodes,
// ports, labels and (hyper)edges, validates it, and builds the containment
// tree exclusively through the construction functions of [graph]. An edge's
// containing node is computed from its endpoints unless the document
// declares one with "container".
//
// # Document Format
//
// The document root is itself a node. Nodes nest through "children"; edges
// may be declared on any node and reference shapes (nodes or ports) by id:
//
//	{
//	  "id": "root",
//	  "children": [
//	    {"id": "a", "ports": [{"id": "a.out"}]},
//	    {"id": "b", "children": [{"id": "b1"}]}
//	  ],
//	  "edges": [
//	    {"id": "e1", "sources": ["a.out"], "targets": ["b1"]}
//	  ]
//	}
//
// The same structure can be written in YAML.
//
// # Fields
//
// Nodes, ports, labels, edges and sections accept an optional "id" and a
// freeform "properties" object. Elements without an id receive a random UUID.
// Labels require "text". Edges list "sources" and "targets" (at least one
// endpoint in total), an optional "container" naming the node the edge is
// contained in, and optional "sections", each naming the sections of the
// same edge it continues into with "outgoing". A declared container is kept
// as authored, even when it misses an endpoint; auditing and recomputing it
// is left to the caller.
//
// # Errors
//
// Malformed input fails with code INVALID_FORMAT, structural problems
// (duplicate ids, invalid identifiers) with INVALID_INPUT, unknown endpoint
// or container references with NOT_FOUND. Construction errors from [graph] are passed
// through with the offending edge in the message.
//
// [graph]: github.com/matzehuels/nestgraph/pkg/graph
package io
