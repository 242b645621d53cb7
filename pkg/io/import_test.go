package io

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/nestgraph/pkg/errors"
	"github.com/matzehuels/nestgraph/pkg/graph"
)

func nodeByID(t *testing.T, root *graph.Node, id string) *graph.Node {
	t.Helper()
	for n := range graph.AllNodes(root) {
		if n.ID() == id {
			return n
		}
	}
	t.Fatalf("node %s not found", id)
	return nil
}

func edgeByID(t *testing.T, root *graph.Node, id string) *graph.Edge {
	t.Helper()
	for e := range graph.AllEdges(root) {
		if e.ID() == id {
			return e
		}
	}
	t.Fatalf("edge %s not found", id)
	return nil
}

func TestReadJSON(t *testing.T) {
	doc := `{
	  "id": "root",
	  "children": [
	    {"id": "a", "ports": [{"id": "a.out"}]},
	    {"id": "b", "children": [{"id": "b1"}]}
	  ],
	  "edges": [
	    {"id": "e1", "sources": ["a.out"], "targets": ["b"]},
	    {"id": "e2", "sources": ["b"], "targets": ["b1"]}
	  ]
	}`

	root, err := ReadJSON(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "root", root.ID())
	require.Len(t, root.Children(), 2)
	a := nodeByID(t, root, "a")
	b := nodeByID(t, root, "b")
	require.Len(t, a.Ports(), 1)
	assert.Equal(t, "a.out", a.Ports()[0].ID())

	e1 := edgeByID(t, root, "e1")
	assert.Same(t, root, e1.ContainingNode())
	assert.Equal(t, []graph.ConnectableShape{a.Ports()[0]}, e1.Sources())

	e2 := edgeByID(t, root, "e2")
	assert.Same(t, b, e2.ContainingNode())
}

func TestReadYAMLFixture(t *testing.T) {
	root, err := ImportFile(filepath.Join("testdata", "layered.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "layered", root.Props()["algorithm"])
	require.Len(t, root.Labels(), 1)
	assert.Equal(t, "System", root.Labels()[0].Text)

	frontend := nodeByID(t, root, "frontend")
	backend := nodeByID(t, root, "backend")
	api := nodeByID(t, root, "api")

	assert.Same(t, frontend, edgeByID(t, root, "ui-router").ContainingNode())
	request := edgeByID(t, root, "request")
	require.Len(t, request.Labels(), 1)
	assert.Equal(t, "REST", request.Labels()[0].Text)
	assert.Same(t, root, request.ContainingNode())
	assert.Same(t, backend.Ports()[0], request.Targets()[0])
	require.Len(t, request.Sections(), 2)
	assert.Equal(t, request.Sections()[1:], request.Sections()[0].OutgoingSections())
	assert.Len(t, api.Ports()[0].Labels(), 1)

	// router -> {api, store}: router's parent is frontend, api's is backend,
	// so the greedy fold stays at router.
	fanout := edgeByID(t, root, "fanout")
	assert.True(t, fanout.IsHyperedge())
	assert.Equal(t, "router", fanout.ContainingNode().ID())

	issues, err := graph.CheckGraph(root)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Same(t, fanout, issues[0].Edge)
	assert.Same(t, root, issues[0].Expected)
}

func TestReadAssignsIDs(t *testing.T) {
	root, err := ReadJSON(strings.NewReader(`{"children": [{}, {"labels": [{"text": "x"}]}]}`))
	require.NoError(t, err)

	seen := map[string]bool{}
	for n := range graph.AllNodes(root) {
		assert.NotEmpty(t, n.ID())
		assert.False(t, seen[n.ID()], "duplicate generated id")
		seen[n.ID()] = true
	}
	assert.NotEmpty(t, root.Children()[1].Labels()[0].ID())
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		doc    string
		code   errors.Code
	}{
		{"malformed json", FormatJSON, `{"id": `, errors.ErrCodeInvalidFormat},
		{"unknown field", FormatJSON, `{"nodes": []}`, errors.ErrCodeInvalidFormat},
		{"malformed yaml", FormatYAML, "id: [", errors.ErrCodeInvalidFormat},
		{"unknown format", Format("xml"), `<graph/>`, errors.ErrCodeInvalidFormat},
		{"invalid identifier", FormatJSON, `{"id": "has space"}`, errors.ErrCodeInvalidInput},
		{"label without text", FormatJSON, `{"labels": [{}]}`, errors.ErrCodeInvalidInput},
		{"duplicate id", FormatJSON, `{"id": "x", "children": [{"id": "x"}]}`, errors.ErrCodeInvalidInput},
		{"unknown endpoint", FormatJSON, `{"children": [{"id": "a"}], "edges": [{"sources": ["a"], "targets": ["zz"]}]}`, errors.ErrCodeNotFound},
		{"edge without endpoints", FormatJSON, `{"edges": [{"id": "e"}]}`, errors.ErrCodeInvalidEdge},
		{"unknown container", FormatJSON, `{"children": [{"id": "a"}], "edges": [{"sources": ["a"], "container": "zz"}]}`, errors.ErrCodeNotFound},
		{"port as container", FormatJSON, `{"children": [{"id": "a", "ports": [{"id": "p"}]}], "edges": [{"sources": ["a"], "container": "p"}]}`, errors.ErrCodeNotFound},
		{"declared container without endpoints", FormatJSON, `{"id": "r", "edges": [{"container": "r"}]}`, errors.ErrCodeInvalidEdge},
		{"unknown section", FormatYAML, "children: [{id: a}]\nedges:\n  - sources: [a]\n    sections: [{id: s1, outgoing: [s9]}]\n", errors.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.doc), tt.format)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.code), "error %v, want code %s", err, tt.code)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"g.json", FormatJSON, false},
		{"g.YAML", FormatYAML, false},
		{"dir/g.yml", FormatYAML, false},
		{"g.dot", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImportFileMissing(t *testing.T) {
	_, err := ImportFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeNotFound))
}

func TestImportFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id": "g", "children": [{"id": "a"}, {"id": "b"}], "edges": [{"sources": ["a", "b"]}]}`), 0o644))

	root, err := ImportFile(path)
	require.NoError(t, err)
	edges := slices.Collect(graph.AllEdges(root))
	require.Len(t, edges, 1)
	assert.Same(t, root, edges[0].ContainingNode())
}

func TestReadDeclaredContainer(t *testing.T) {
	doc := `id: r
children:
  - id: a
    children: [{id: a1}]
  - id: b
edges:
  - {id: declared, sources: [a1], targets: [a], container: b}
  - {id: computed, sources: [a1], targets: [a]}
`
	root, err := ReadYAML(strings.NewReader(doc))
	require.NoError(t, err)

	a := nodeByID(t, root, "a")
	b := nodeByID(t, root, "b")
	a1 := nodeByID(t, root, "a1")

	declared := edgeByID(t, root, "declared")
	assert.Same(t, b, declared.ContainingNode())
	assert.Equal(t, []*graph.Edge{declared}, b.ContainedEdges())
	assert.Contains(t, a1.OutgoingEdges(), declared)
	assert.Contains(t, a.IncomingEdges(), declared)

	assert.Same(t, a, edgeByID(t, root, "computed").ContainingNode())

	issues, err := graph.CheckGraph(root)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Same(t, declared, issues[0].Edge)
	assert.Same(t, a, issues[0].Expected)
}
