package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/nestgraph/pkg/errors"
)

// checkCommand audits the containment of every edge and fails when any
// edge's containing node does not cover all its endpoints.
func (c *CLI) checkCommand() *cobra.Command {
	var recompute bool

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Audit edge containment",
		Long: `Audit edge containment.

For every edge, check that its containing node is an ancestor of (or equal to)
the node of each endpoint. Violations are listed with the lowest common ancestor
that would contain the edge, and the command exits with a non-zero status.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recompute = flagOr(cmd, "recompute", recompute, c.Config.Render.Recompute)

			l, err := c.load(cmd.Context(), args[0], recompute)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(l.issues) == 0 {
				printSuccess(w, "All %d edges are soundly contained", l.stats.EdgeCount)
				return nil
			}
			for _, is := range l.issues {
				printError(w, "%s", is.String())
			}
			printStats(w, l.stats.NodeCount, l.stats.EdgeCount, nil)
			return errors.New(errors.ErrCodeInvariantViolation, "%d of %d edges fail the containment audit",
				len(l.issues), l.stats.EdgeCount)
		},
	}

	cmd.Flags().BoolVar(&recompute, "recompute", false, "recompute every edge's containing node before auditing")

	return cmd
}
