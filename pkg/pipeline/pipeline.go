// Package pipeline provides the import → resolve → render pipeline behind the
// nestgraph commands.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Import: Decode a JSON or YAML document and build the containment tree
//  2. Resolve: Optionally recompute every edge's containing node, then audit
//     the containment of all edges
//  3. Render: Generate DOT source and, for SVG, render it through Graphviz
//
// Each stage can be run independently or as part of the complete pipeline.
// Only rendered SVG is cached; import and resolve are cheap compared to a
// Graphviz run.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Path:      "system.yaml",
//	    Format:    pipeline.FormatSVG,
//	    Recompute: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("system.svg", result.Artifact, 0o644)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/nestgraph/pkg/cache"
	"github.com/matzehuels/nestgraph/pkg/errors"
	"github.com/matzehuels/nestgraph/pkg/graph"
	"github.com/matzehuels/nestgraph/pkg/render/nodelink"
)

// Format constants for output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT: true,
	FormatSVG: true,
}

const (
	// DefaultFormat is the output format when none is given.
	DefaultFormat = FormatSVG

	// DefaultDirection is the Graphviz rank direction when none is given.
	DefaultDirection = string(nodelink.TopToBottom)
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
type Options struct {
	// Import options
	Path string `json:"path" toml:"-"`

	// Resolve options
	Recompute bool `json:"recompute,omitempty" toml:"recompute"` // Recompute containment of every edge before auditing

	// Render options
	Format    string `json:"format,omitempty" toml:"format"`
	Direction string `json:"direction,omitempty" toml:"direction"`
	Detailed  bool   `json:"detailed,omitempty" toml:"detailed"`
	Refresh   bool   `json:"refresh,omitempty" toml:"-"` // Bypass cached artifacts

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the root of the imported tree.
	Graph *graph.Node

	// Issues lists edges whose containing node misses an endpoint.
	Issues []graph.ContainmentIssue

	// DOT is the Graphviz source of the diagram.
	DOT string

	// Artifact is the rendered output in the requested format.
	Artifact []byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount   int
	EdgeCount   int
	Reassigned  int // edges whose containing node changed during resolve
	ImportTime  time.Duration
	ResolveTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether the artifact came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid format: %q (must be one of: dot, svg)", format)
	}
	return nil
}

// ValidateDirection checks that a rank direction is valid.
func ValidateDirection(dir string) error {
	if !nodelink.Direction(dir).Valid() {
		return errors.New(errors.ErrCodeInvalidInput, "invalid direction: %q (must be one of: TB, LR, BT, RL)", dir)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForImport(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForImport checks required fields for importing.
func (o *Options) ValidateForImport() error {
	if o.Path == "" {
		return errors.New(errors.ErrCodeInvalidInput, "path is required")
	}
	if err := errors.ValidatePath(o.Path); err != nil {
		return err
	}
	o.setLoggerDefault()
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Direction == "" {
		o.Direction = DefaultDirection
	}
	o.setLoggerDefault()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	return ValidateDirection(o.Direction)
}

// RenderOptions returns the options passed to the DOT writer.
func (o *Options) RenderOptions() nodelink.Options {
	return nodelink.Options{
		Detailed:  o.Detailed,
		Direction: nodelink.Direction(o.Direction),
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:    o.Format,
		Direction: o.Direction,
		Detailed:  o.Detailed,
	}
}

func (o *Options) setLoggerDefault() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// String summarizes the options for log output.
func (o *Options) String() string {
	return fmt.Sprintf("path=%s format=%s direction=%s detailed=%v recompute=%v",
		o.Path, o.Format, o.Direction, o.Detailed, o.Recompute)
}
