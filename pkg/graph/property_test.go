package graph

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const propertyPoolSize = 8

// applyMoves runs SetParent for each (child, parent) index pair on a pool of
// nodes. A parent index outside the pool detaches the child. Cycle errors are
// expected and ignored.
func applyMoves(children, parents []int) []*Node {
	pool := make([]*Node, propertyPoolSize)
	for i := range pool {
		pool[i] = CreateGraph()
	}
	for i := 0; i < len(children) && i < len(parents); i++ {
		var parent *Node
		if parents[i] < propertyPoolSize {
			parent = pool[parents[i]]
		}
		_ = pool[children[i]].SetParent(parent)
	}
	return pool
}

// TestHierarchyInvariants verifies that no sequence of SetParent calls can
// break the containment tree.
func TestHierarchyInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	moves := gen.SliceOfN(32, gen.IntRange(0, propertyPoolSize-1))
	parentsOrRoot := gen.SliceOfN(32, gen.IntRange(0, propertyPoolSize))

	properties.Property("no node is its own descendant", prop.ForAll(
		func(children, parents []int) bool {
			for _, n := range applyMoves(children, parents) {
				if IsDescendant(n, n) {
					return false
				}
				// The parent chain must end within the pool size.
				if Depth(n) >= propertyPoolSize {
					return false
				}
			}
			return true
		},
		moves,
		parentsOrRoot,
	))

	properties.Property("child lists mirror parent references", prop.ForAll(
		func(children, parents []int) bool {
			pool := applyMoves(children, parents)
			for _, n := range pool {
				listed := 0
				for _, other := range pool {
					for _, c := range other.Children() {
						if c == n {
							listed++
							if other != n.Parent() {
								return false
							}
						}
					}
				}
				want := 0
				if n.Parent() != nil {
					want = 1
				}
				if listed != want {
					return false
				}
			}
			return true
		},
		moves,
		parentsOrRoot,
	))

	properties.Property("ports have a single owner", prop.ForAll(
		func(owners []int) bool {
			pool := make([]*Node, propertyPoolSize)
			for i := range pool {
				pool[i] = CreateGraph()
			}
			var ports []*Port
			for _, o := range owners {
				ports = append(ports, CreatePort(pool[o]))
			}
			for _, p := range ports {
				owning := 0
				for _, n := range pool {
					for _, q := range n.Ports() {
						if q == p {
							owning++
							if p.Parent() != n {
								return false
							}
						}
					}
				}
				if owning != 1 {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, propertyPoolSize-1)),
	))

	properties.Property("sibling edges are contained in the shared parent", prop.ForAll(
		func(children, parents []int) bool {
			pool := applyMoves(children, parents)
			for _, p := range pool {
				kids := p.Children()
				if len(kids) < 2 {
					continue
				}
				e, err := CreateSimpleEdge(kids[0], kids[1])
				if err != nil || e.ContainingNode() != p {
					return false
				}
			}
			return true
		},
		moves,
		parentsOrRoot,
	))

	properties.TestingRun(t)
}
