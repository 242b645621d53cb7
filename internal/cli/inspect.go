package cli

import (
	"github.com/spf13/cobra"
)

// inspectCommand prints the containment tree of a document.
func (c *CLI) inspectCommand() *cobra.Command {
	var recompute, detailed bool

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print the containment tree of a graph document",
		Long: `Print the containment tree of a graph document.

Each node lists its ports, its children and the edges contained in it, so the
output shows which node every edge was assigned to. Edges whose containing node
misses one of their endpoints are highlighted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recompute = flagOr(cmd, "recompute", recompute, c.Config.Render.Recompute)
			detailed = flagOr(cmd, "detailed", detailed, c.Config.Render.Detailed)

			l, err := c.load(cmd.Context(), args[0], recompute)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printTree(w, l.root, treeOpts{detailed: detailed, flagged: l.flagged()})
			printStats(w, l.stats.NodeCount, l.stats.EdgeCount, nil)
			if recompute {
				printDetail(w, "%d edge(s) reassigned", l.stats.Reassigned)
			}
			if n := len(l.issues); n > 0 {
				printWarning(w, "%d edge(s) not contained by their containing node", n)
				printNextStep(w, "Details", "nestgraph check "+args[0])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&recompute, "recompute", false, "recompute every edge's containing node from its endpoints")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show node properties")

	return cmd
}
