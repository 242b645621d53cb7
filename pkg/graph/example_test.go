package graph_test

import (
	"fmt"
	"slices"

	"github.com/matzehuels/nestgraph/pkg/graph"
)

func ExampleCreateSimpleEdge() {
	// A compound node with two children, connected to a sibling via a port
	root := graph.CreateGraph()
	root.SetID("root")
	service := graph.CreateNode(root)
	service.SetID("service")
	db := graph.CreateNode(root)
	db.SetID("db")
	port := graph.CreatePort(db)

	e, err := graph.CreateSimpleEdge(service, port)
	if err != nil {
		panic(err)
	}
	fmt.Println("Contained in:", e.ContainingNode().ID())
	fmt.Println("Incoming at db:", len(slices.Collect(graph.AllIncomingEdges(db))))
	// Output:
	// Contained in: root
	// Incoming at db: 1
}

func ExampleCreateHyperedge() {
	root := graph.CreateGraph()
	root.SetID("root")
	a := graph.CreateNode(root)
	b := graph.CreateNode(root)
	c := graph.CreateNode(root)

	e, err := graph.CreateHyperedge(
		slices.Values([]graph.ConnectableShape{a, b}),
		slices.Values([]graph.ConnectableShape{c}),
	)
	if err != nil {
		panic(err)
	}
	fmt.Println("Hyperedge:", e.IsHyperedge())
	fmt.Println("Endpoints:", len(slices.Collect(graph.AllIncidentShapes(e))))
	fmt.Println("Contained in:", e.ContainingNode().ID())
	// Output:
	// Hyperedge: true
	// Endpoints: 3
	// Contained in: root
}

func ExampleCheckContainment() {
	// R has children A and B; A has a child A1. The greedy containment
	// fold places A1 -> B in A1, which does not contain B.
	r := graph.CreateGraph()
	r.SetID("R")
	a := graph.CreateNode(r)
	a.SetID("A")
	b := graph.CreateNode(r)
	b.SetID("B")
	a1 := graph.CreateNode(a)
	a1.SetID("A1")

	e, _ := graph.CreateSimpleEdge(a1, b)
	e.SetID("e1")
	issue, _ := graph.CheckContainment(e)
	fmt.Println(issue)
	// Output:
	// edge e1: contained in A1, expected R (1 endpoint(s) outside)
}
