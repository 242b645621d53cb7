package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/matzehuels/nestgraph/pkg/graph"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - edges
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleEdge    = lipgloss.NewStyle().Foreground(colorBlue)
	stylePort    = lipgloss.NewStyle().Foreground(colorGray)
	styleBadEdge = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconPort    = "◦"
	iconEdge    = "⇢"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printNextStep prints a suggested next command.
func printNextStep(w io.Writer, description, cmd string) {
	fmt.Fprintln(w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// =============================================================================
// Stats Display
// =============================================================================

// printStats prints graph statistics on a single line. cached is nil when
// the command did not consult the cache.
func printStats(w io.Writer, nodeCount, edgeCount int, cached *bool) {
	parts := []string{
		StyleDim.Render(fmt.Sprintf("%d nodes", nodeCount)),
		StyleDim.Render(fmt.Sprintf("%d edges", edgeCount)),
	}
	if cached != nil {
		if *cached {
			parts = append(parts, styleCached.Render(iconCached))
		} else {
			parts = append(parts, styleComputed.Render(iconFresh))
		}
	}
	fmt.Fprintln(w, "  "+strings.Join(parts, StyleDim.Render(" · ")))
}

// =============================================================================
// Tree Display
// =============================================================================

// treeOpts controls printTree.
type treeOpts struct {
	detailed bool
	// flagged edges are highlighted as containment violations
	flagged map[*graph.Edge]bool
}

// printTree prints the containment tree: each node lists its ports, its
// children and the edges contained in it.
func printTree(w io.Writer, root *graph.Node, opts treeOpts) {
	fmt.Fprintln(w, buildTree(root, opts).RootStyle(StyleTitle).String())
}

func buildTree(n *graph.Node, opts treeOpts) *tree.Tree {
	t := tree.Root(nodeTitle(n, opts.detailed)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(StyleDim)
	for _, p := range n.Ports() {
		t.Child(stylePort.Render(iconPort + " " + elementName(p)))
	}
	for _, c := range n.Children() {
		if c.IsHierarchical() || len(c.Ports()) > 0 || len(c.ContainedEdges()) > 0 {
			t.Child(buildTree(c, opts))
			continue
		}
		t.Child(StyleValue.Render(nodeTitle(c, opts.detailed)))
	}
	for _, e := range n.ContainedEdges() {
		style := styleEdge
		if opts.flagged[e] {
			style = styleBadEdge
		}
		t.Child(style.Render(iconEdge + " " + edgeSummary(e)))
	}
	return t
}

func nodeTitle(n *graph.Node, detailed bool) string {
	title := elementName(n)
	if texts := labelTexts(n); texts != "" {
		title += " " + StyleDim.Render("("+texts+")")
	}
	if detailed && len(n.Props()) > 0 {
		props := make([]string, 0, len(n.Props()))
		for _, k := range slices.Sorted(maps.Keys(n.Props())) {
			props = append(props, fmt.Sprintf("%s=%v", k, n.Props()[k]))
		}
		title += " " + StyleDim.Render("["+strings.Join(props, " ")+"]")
	}
	return title
}

// edgeSummary renders "id: a, b → c".
func edgeSummary(e *graph.Edge) string {
	names := func(shapes []graph.ConnectableShape) string {
		out := make([]string, len(shapes))
		for i, s := range shapes {
			out[i] = elementName(s)
		}
		return strings.Join(out, ", ")
	}
	return fmt.Sprintf("%s: %s %s %s", elementName(e), names(e.Sources()), iconArrow, names(e.Targets()))
}

func elementName(el graph.Element) string {
	if el.ID() != "" {
		return el.ID()
	}
	return "(unnamed)"
}

func labelTexts(el graph.Element) string {
	texts := make([]string, 0, len(el.Labels()))
	for _, l := range el.Labels() {
		texts = append(texts, l.Text)
	}
	return strings.Join(texts, ", ")
}
