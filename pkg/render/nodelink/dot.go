package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/nestgraph/pkg/graph"
)

// Direction is a Graphviz rank direction.
type Direction string

// Supported rank directions.
const (
	TopToBottom Direction = "TB"
	LeftToRight Direction = "LR"
	BottomToTop Direction = "BT"
	RightToLeft Direction = "RL"
)

// Valid reports whether d is one of the supported rank directions.
func (d Direction) Valid() bool {
	switch d {
	case TopToBottom, LeftToRight, BottomToTop, RightToLeft:
		return true
	}
	return false
}

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes identifiers and properties in labels and marks
	// edges whose containing node does not cover all their endpoints.
	Detailed bool

	// Direction is the rank direction. Empty means TopToBottom.
	Direction Direction
}

// ToDOT converts the tree rooted at root to Graphviz DOT format.
//
// Hierarchical nodes and nodes with ports become clusters. Every edge is
// written into the cluster of its containing node, so the nesting of the
// output mirrors the containment the layout algorithms will see. Hyperedges
// are drawn through a small junction point.
func ToDOT(root *graph.Node, opts Options) string {
	dir := opts.Direction
	if dir == "" {
		dir = TopToBottom
	}

	w := &dotWriter{opts: opts, names: newNamer()}
	w.collect(root)

	w.line(0, "digraph G {")
	w.line(1, "rankdir=%s;", dir)
	w.line(1, "compound=true;")
	w.line(1, "bgcolor=\"transparent\";")
	w.line(1, "node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];")
	w.line(1, "ranksep=0.5;")
	w.line(1, "nodesep=0.3;")
	if root != nil {
		if label := w.nodeLabel(root); label != "" {
			w.line(1, "label=%q;", label)
		}
		w.buf.WriteString("\n")
		w.body(root, 1)
	}
	w.line(0, "}")
	return w.buf.String()
}

type dotWriter struct {
	buf   bytes.Buffer
	opts  Options
	names *namer
	// edges by the node whose scope they are written in
	scoped map[*graph.Node][]*graph.Edge
	root   *graph.Node
}

// collect assigns every reachable edge to the scope it is drawn in: the
// cluster of its containing node, or the nearest enclosing cluster when the
// containing node is drawn as a plain box. Edges whose containing node is
// outside the tree are drawn at the top level.
func (w *dotWriter) collect(root *graph.Node) {
	w.root = root
	w.scoped = make(map[*graph.Node][]*graph.Edge)
	inTree := make(map[*graph.Node]bool)
	for n := range graph.AllNodes(root) {
		inTree[n] = true
	}
	for e := range graph.AllEdges(root) {
		scope := e.ContainingNode()
		if !inTree[scope] {
			scope = root
		}
		for scope != root && !isCluster(scope) {
			scope = scope.Parent()
		}
		w.scoped[scope] = append(w.scoped[scope], e)
	}
}

// body writes the contents of n's scope: its ports, its children and the
// edges contained in it.
func (w *dotWriter) body(n *graph.Node, depth int) {
	if len(n.IncomingEdges())+len(n.OutgoingEdges()) > 0 {
		w.anchor(n, depth)
	}
	for _, p := range n.Ports() {
		w.port(p, depth)
	}
	for _, c := range n.Children() {
		w.node(c, depth)
	}
	for _, e := range w.scoped[n] {
		w.edge(e, depth)
	}
}

func (w *dotWriter) node(n *graph.Node, depth int) {
	if !isCluster(n) {
		w.line(depth, "%q [%s];", w.names.of(n), strings.Join(w.nodeAttrs(n), ", "))
		return
	}
	w.line(depth, "subgraph %q {", clusterName(w.names.of(n)))
	w.line(depth+1, "label=%q;", w.nodeLabel(n))
	w.line(depth+1, "style=\"rounded\";")
	w.body(n, depth+1)
	w.line(depth, "}")
}

// anchor writes the invisible point edges attach to when they end on a
// cluster itself rather than on one of its ports.
func (w *dotWriter) anchor(n *graph.Node, depth int) {
	w.line(depth, "%q [shape=point, style=invis, width=0.01];", w.names.of(n))
}

func (w *dotWriter) port(p *graph.Port, depth int) {
	attrs := []string{"shape=circle", "width=0.15", "label=\"\"", "fillcolor=black"}
	if label := w.portLabel(p); label != "" {
		attrs = append(attrs, fmt.Sprintf("xlabel=%q", label))
	}
	w.line(depth, "%q [%s];", w.names.of(p), strings.Join(attrs, ", "))
}

func (w *dotWriter) edge(e *graph.Edge, depth int) {
	var style []string
	if w.opts.Detailed {
		if issue, err := graph.CheckContainment(e); err == nil && issue != nil {
			style = append(style, "color=red", "style=dashed")
		}
	}
	label := labelText(e)

	sources, targets := e.Sources(), e.Targets()
	if len(sources) == 1 && len(targets) == 1 {
		attrs := style
		if label != "" {
			attrs = append([]string{fmt.Sprintf("label=%q", label)}, style...)
		}
		w.arc(depth, w.end(sources[0]), w.end(targets[0]), attrs)
		return
	}

	hub := endpoint{name: w.names.hub(e)}
	if label != "" {
		w.line(depth, "%q [shape=point, width=0.08, xlabel=%q];", hub.name, label)
	} else {
		w.line(depth, "%q [shape=point, width=0.08];", hub.name)
	}
	for _, s := range sources {
		w.arc(depth, w.end(s), hub, append([]string{"arrowhead=none"}, style...))
	}
	for _, t := range targets {
		w.arc(depth, hub, w.end(t), style)
	}
}

// endpoint is one end of a DOT arc. shape is nil for junction points.
type endpoint struct {
	name  string
	shape graph.ConnectableShape
}

func (w *dotWriter) end(s graph.ConnectableShape) endpoint {
	return endpoint{name: w.names.of(s), shape: s}
}

func (w *dotWriter) arc(depth int, from, to endpoint, attrs []string) {
	attrs = slices.Clone(attrs)
	if c := w.clip(from, to); c != "" {
		attrs = append(attrs, fmt.Sprintf("ltail=%q", c))
	}
	if c := w.clip(to, from); c != "" {
		attrs = append(attrs, fmt.Sprintf("lhead=%q", c))
	}
	if len(attrs) == 0 {
		w.line(depth, "%q -> %q;", from.name, to.name)
		return
	}
	w.line(depth, "%q -> %q [%s];", from.name, to.name, strings.Join(attrs, ", "))
}

// clip returns the cluster an arc ending at end should be clipped to, or ""
// when end is not drawn as a cluster. Graphviz rejects clipping at a cluster
// that also contains the other end.
func (w *dotWriter) clip(end, other endpoint) string {
	n, ok := end.shape.(*graph.Node)
	if !ok || n == w.root || !isCluster(n) {
		return ""
	}
	if other.shape != nil {
		if o, err := graph.ShapeToNode(other.shape); err == nil && o != nil && (o == n || graph.IsDescendant(o, n)) {
			return ""
		}
	}
	return clusterName(end.name)
}

func (w *dotWriter) nodeAttrs(n *graph.Node) []string {
	return []string{fmt.Sprintf("label=%q", w.nodeLabel(n))}
}

func (w *dotWriter) nodeLabel(n *graph.Node) string {
	name := labelText(n)
	if name == "" {
		name = n.ID()
	}
	if !w.opts.Detailed {
		return name
	}
	parts := []string{name}
	if n.ID() != "" && n.ID() != name {
		parts = append(parts, "id: "+n.ID())
	}
	parts = append(parts, fmtProps(n.Props())...)
	return strings.Join(parts, "\n")
}

func (w *dotWriter) portLabel(p *graph.Port) string {
	if text := labelText(p); text != "" {
		return text
	}
	if w.opts.Detailed {
		return p.ID()
	}
	return ""
}

func (w *dotWriter) line(depth int, format string, args ...any) {
	w.buf.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(&w.buf, format, args...)
	w.buf.WriteByte('\n')
}

func isCluster(n *graph.Node) bool {
	return n.IsHierarchical() || len(n.Ports()) > 0
}

func clusterName(name string) string {
	return "cluster_" + name
}

func labelText(el graph.Element) string {
	texts := make([]string, 0, len(el.Labels()))
	for _, l := range el.Labels() {
		if l.Text != "" {
			texts = append(texts, l.Text)
		}
	}
	return strings.Join(texts, "\n")
}

func fmtProps(props graph.Properties) []string {
	parts := make([]string, 0, len(props))
	for _, k := range slices.Sorted(maps.Keys(props)) {
		parts = append(parts, fmt.Sprintf("%s: %v", k, props[k]))
	}
	return parts
}

// namer hands out DOT identifiers: the element's ID when it has a unique
// one, a generated name otherwise.
type namer struct {
	names map[graph.Element]string
	used  map[string]bool
	seq   int
}

func newNamer() *namer {
	return &namer{names: make(map[graph.Element]string), used: make(map[string]bool)}
}

func (nm *namer) of(el graph.Element) string {
	if name, ok := nm.names[el]; ok {
		return name
	}
	name := el.ID()
	if name == "" || nm.used[name] {
		name = nm.fresh(kind(el))
	}
	nm.used[name] = true
	nm.names[el] = name
	return name
}

func (nm *namer) hub(e *graph.Edge) string {
	name := nm.fresh(nm.of(e) + ".junction")
	nm.used[name] = true
	return name
}

func (nm *namer) fresh(prefix string) string {
	for {
		nm.seq++
		name := prefix + "#" + strconv.Itoa(nm.seq)
		if !nm.used[name] {
			return name
		}
	}
}

func kind(el graph.Element) string {
	switch el.(type) {
	case *graph.Node:
		return "node"
	case *graph.Port:
		return "port"
	case *graph.Edge:
		return "edge"
	}
	return "element"
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one whose
// viewBox starts at the origin, so the output scales in a browser.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
