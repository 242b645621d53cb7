package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/nestgraph/pkg/graph"
	"github.com/matzehuels/nestgraph/pkg/pipeline"
)

// flagOr returns the flag value when the user set the flag, fallback
// (usually from the config file) otherwise.
func flagOr[T any](cmd *cobra.Command, name string, flag, fallback T) T {
	if cmd.Flags().Changed(name) {
		return flag
	}
	return fallback
}

// loaded is an imported and audited graph.
type loaded struct {
	root   *graph.Node
	issues []graph.ContainmentIssue
	stats  pipeline.Stats
}

// flagged returns the set of edges with containment issues.
func (l *loaded) flagged() map[*graph.Edge]bool {
	m := make(map[*graph.Edge]bool, len(l.issues))
	for _, is := range l.issues {
		m[is.Edge] = true
	}
	return m
}

// load runs the import and resolve stages without rendering.
func (c *CLI) load(ctx context.Context, path string, recompute bool) (*loaded, error) {
	runner, err := c.newRunner(true)
	if err != nil {
		return nil, err
	}
	defer runner.Close()

	opts := pipeline.Options{Path: path, Recompute: recompute, Logger: c.Logger}
	l := &loaded{}
	if l.root, err = runner.Import(ctx, opts, &l.stats); err != nil {
		return nil, err
	}
	if l.issues, err = runner.Resolve(ctx, l.root, opts, &l.stats); err != nil {
		return nil, err
	}
	return l, nil
}
