package nodelink_test

import (
	"fmt"

	"github.com/matzehuels/nestgraph/pkg/graph"
	"github.com/matzehuels/nestgraph/pkg/render/nodelink"
)

func ExampleToDOT() {
	system := graph.CreateGraph()
	system.SetID("system")
	api := graph.CreateNode(system)
	api.SetID("api")
	db := graph.CreateNode(system)
	db.SetID("db")
	_, _ = graph.CreateSimpleEdge(api, db)

	fmt.Print(nodelink.ToDOT(system, nodelink.Options{}))
	// Output:
	// digraph G {
	//   rankdir=TB;
	//   compound=true;
	//   bgcolor="transparent";
	//   node [shape=box, style="rounded,filled", fillcolor=white, fontsize=14, margin="0.2,0.1"];
	//   ranksep=0.5;
	//   nodesep=0.3;
	//   label="system";
	//
	//   "api" [label="api"];
	//   "db" [label="db"];
	//   "api" -> "db";
	// }
}
