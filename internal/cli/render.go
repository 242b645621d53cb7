package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/nestgraph/pkg/errors"
	"github.com/matzehuels/nestgraph/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string // output file, "-" for stdout
	format    string // dot or svg
	direction string // Graphviz rank direction
	detailed  bool   // show ids and properties, mark unsound edges
	recompute bool   // recompute containment before rendering
	noCache   bool   // bypass the artifact cache entirely
	refresh   bool   // re-render and overwrite the cached artifact
}

// renderCommand renders a document as a clustered node-link diagram.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph document as a DOT or SVG diagram",
		Long: `Render a graph document as a node-link diagram.

Every node with children or ports becomes a Graphviz cluster, and every edge is
drawn inside the cluster of its containing node. SVG output is cached; use
--refresh to force a new render.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config.Render
			opts.format = flagOr(cmd, "format", opts.format, cfg.Format)
			opts.direction = flagOr(cmd, "direction", opts.direction, cfg.Direction)
			opts.detailed = flagOr(cmd, "detailed", opts.detailed, cfg.Detailed)
			opts.recompute = flagOr(cmd, "recompute", opts.recompute, cfg.Recompute)
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension, - for stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", pipeline.DefaultFormat, "output format: svg, dot")
	cmd.Flags().StringVar(&opts.direction, "direction", pipeline.DefaultDirection, "rank direction: TB, LR, BT, RL")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show ids and properties, mark unsoundly contained edges")
	cmd.Flags().BoolVar(&opts.recompute, "recompute", false, "recompute every edge's containing node first")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if a cached artifact exists")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts renderOpts) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(cmd.Context(), pipeline.Options{
		Path:      input,
		Format:    opts.format,
		Direction: opts.direction,
		Detailed:  opts.detailed,
		Recompute: opts.recompute,
		Refresh:   opts.refresh,
		Logger:    c.Logger,
	})
	if err != nil {
		return err
	}

	status := cmd.OutOrStdout()
	out := opts.output
	if out == "-" {
		status = cmd.ErrOrStderr()
		if _, err := cmd.OutOrStdout().Write(result.Artifact); err != nil {
			return err
		}
	} else {
		if out == "" {
			out = outputPath(input, opts.format)
		}
		if err := writeArtifact(out, result.Artifact); err != nil {
			return err
		}
	}
	prog.done("Rendered " + out)

	printSuccess(status, "Rendered %s", opts.format)
	if out != "-" {
		printFile(status, out)
	}
	printStats(status, result.Stats.NodeCount, result.Stats.EdgeCount, &result.CacheInfo.RenderHit)
	if n := len(result.Issues); n > 0 {
		printWarning(status, "%d edge(s) not contained by their containing node", n)
	}
	return nil
}

// outputPath replaces the input's extension with the format name.
func outputPath(input, format string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}

func writeArtifact(path string, data []byte) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
