package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/nestgraph/pkg/cache"
	"github.com/matzehuels/nestgraph/pkg/graph"
	"github.com/matzehuels/nestgraph/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Every Execute builds its own tree, so multiple
// goroutines can share a Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is the lifetime of cached artifacts. Zero means cache.TTLArtifact.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete import → resolve → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.Logger.Debug("running pipeline", "options", opts.String())

	result := &Result{}

	// Stage 1: Import
	root, err := r.Import(ctx, opts, &result.Stats)
	if err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}
	result.Graph = root

	// Stage 2: Resolve
	issues, err := r.Resolve(ctx, root, opts, &result.Stats)
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}
	result.Issues = issues

	// Stage 3: Render
	renderStart := time.Now()
	dot, artifact, hit, err := r.RenderWithCacheInfo(ctx, root, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.DOT = dot
	result.Artifact = artifact
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hit

	r.Logger.Info("rendered diagram",
		"format", opts.Format,
		"bytes", len(artifact),
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Import runs the import stage and records its statistics in stats, which
// may be nil.
func (r *Runner) Import(ctx context.Context, opts Options, stats *Stats) (*graph.Node, error) {
	if err := opts.ValidateForImport(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnImportStart(ctx, opts.Path)

	start := time.Now()
	root, err := Import(ctx, opts)
	elapsed := time.Since(start)
	if err != nil {
		hooks.OnImportComplete(ctx, opts.Path, 0, 0, elapsed, err)
		return nil, err
	}

	nodes, edges := countElements(root)
	hooks.OnImportComplete(ctx, opts.Path, nodes, edges, elapsed, nil)
	if stats != nil {
		stats.NodeCount, stats.EdgeCount, stats.ImportTime = nodes, edges, elapsed
	}
	r.Logger.Info("imported graph",
		"nodes", nodes,
		"edges", edges,
		"duration", elapsed)
	return root, nil
}

// Resolve runs the resolve stage and records its statistics in stats, which
// may be nil.
func (r *Runner) Resolve(ctx context.Context, root *graph.Node, opts Options, stats *Stats) ([]graph.ContainmentIssue, error) {
	hooks := observability.Pipeline()
	_, edges := countElements(root)
	hooks.OnResolveStart(ctx, edges)

	start := time.Now()
	issues, changed, err := Resolve(ctx, root, opts.Recompute)
	elapsed := time.Since(start)
	hooks.OnResolveComplete(ctx, changed, len(issues), elapsed, err)
	if err != nil {
		return nil, err
	}

	if stats != nil {
		stats.Reassigned, stats.ResolveTime = changed, elapsed
	}
	r.Logger.Info("resolved containment",
		"reassigned", changed,
		"issues", len(issues),
		"duration", elapsed)
	for _, issue := range issues {
		r.Logger.Warn("edge not contained", "issue", issue.String())
	}
	return issues, nil
}

// RenderWithCacheInfo generates the DOT source and the artifact, serving SVG
// from the cache when possible. It reports whether the artifact was a cache
// hit.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, root *graph.Node, opts Options) (string, []byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return "", nil, false, err
	}
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Format)
	start := time.Now()

	dot := RenderDOT(root, opts)
	if opts.Format == FormatDOT {
		hooks.OnRenderComplete(ctx, opts.Format, len(dot), time.Since(start), nil)
		return dot, []byte(dot), false, nil
	}

	cacheKey := r.Keyer.ArtifactKey(cache.Hash([]byte(dot)), opts.ArtifactKeyOpts())
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			hooks.OnRenderComplete(ctx, opts.Format, len(data), time.Since(start), nil)
			return dot, data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	data, err := RenderArtifact(ctx, dot, opts.Format)
	hooks.OnRenderComplete(ctx, opts.Format, len(data), time.Since(start), err)
	if err != nil {
		return "", nil, false, err
	}

	if err := r.Cache.Set(ctx, cacheKey, data, r.ttl()); err != nil {
		r.Logger.Debug("cache write failed", "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return dot, data, false, nil
}

func (r *Runner) ttl() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return cache.TTLArtifact
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
