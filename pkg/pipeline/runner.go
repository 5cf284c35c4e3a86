package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/flamegraph/pkg/errors"
	pkgio "github.com/matzehuels/flamegraph/pkg/io"
	"github.com/matzehuels/flamegraph/pkg/observability"
	"github.com/matzehuels/flamegraph/pkg/render/flame/layout"
	"github.com/matzehuels/flamegraph/pkg/tree"
)

// Runner executes the layout → render pipeline.
//
// The Runner is stateless except for the logger. It doesn't store pipeline
// results, so multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete layout → render pipeline for root.
func (r *Runner) Execute(ctx context.Context, root tree.Node, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if root == nil {
		return nil, errors.New(errors.ErrCodeInvalidTree, "tree has no root")
	}

	result := &Result{Artifacts: make(map[string][]byte)}
	result.Stats.NodeCount = tree.Count(root)

	for _, v := range tree.Check(root) {
		if v.Negative {
			r.Logger.Warn("negative metric", "frame", v.Path, "metric", v.Metric)
			continue
		}
		r.Logger.Warn("children exceed parent", "frame", v.Path, "metric", v.Metric, "children", v.ChildSum)
	}

	// Stage 1: Layout
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, opts.VizType, result.Stats.NodeCount)
	var err error
	if opts.IsNodelink() {
		result.DOT = GenerateDOT(root, opts)
	} else {
		result.Layout, err = GenerateLayout(root, opts)
	}
	result.Stats.LayoutTime = time.Since(layoutStart)
	if result.Layout != nil {
		result.Stats.RectCount = len(result.Layout.Rects)
		result.Stats.MaxDepth = result.Layout.MaxDepth
	}
	observability.Pipeline().OnLayoutComplete(ctx, opts.VizType, result.Stats.RectCount, result.Stats.LayoutTime, err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	r.Logger.Info("computed layout",
		"viz", opts.VizType,
		"frames", result.Stats.RectCount,
		"duration", result.Stats.LayoutTime)

	// Stage 2: Render
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	if opts.IsNodelink() {
		result.Artifacts, err = RenderNodelink(ctx, result.DOT, opts)
	} else {
		result.Artifacts, err = Render(result.Layout, opts)
	}
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ComputeLayout runs only the flame layout stage.
func (r *Runner) ComputeLayout(ctx context.Context, root tree.Node, opts Options) (*layout.Layout, error) {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return GenerateLayout(root, opts)
}

// Render runs only the render stage for a computed flame layout.
func (r *Runner) Render(ctx context.Context, l *layout.Layout, opts Options) (map[string][]byte, error) {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Render(l, opts)
}

// WriteArtifacts writes each artifact to base plus its format extension
// and returns the written paths in sorted order. Existing files are never
// overwritten.
func (r *Runner) WriteArtifacts(ctx context.Context, result *Result, base string) ([]string, error) {
	if result == nil || len(result.Artifacts) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no artifacts to write")
	}
	formats := make([]string, 0, len(result.Artifacts))
	for f := range result.Artifacts {
		formats = append(formats, f)
	}
	sort.Strings(formats)

	hooks := observability.Artifact()
	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		path := filepath.Clean(base + "." + f)
		data := result.Artifacts[f]
		if err := pkgio.WriteArtifact(path, data); err != nil {
			hooks.OnArtifactError(ctx, path, err)
			return paths, err
		}
		hooks.OnArtifactWritten(ctx, path, len(data))
		r.Logger.Info("wrote artifact", "path", path, "bytes", len(data))
		paths = append(paths, path)
	}
	return paths, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
