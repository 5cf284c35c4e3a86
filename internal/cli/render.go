package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/flamegraph/pkg/io"
	"github.com/matzehuels/flamegraph/pkg/observability"
	"github.com/matzehuels/flamegraph/pkg/pipeline"
	"github.com/matzehuels/flamegraph/pkg/render/flame/styles"
	"github.com/matzehuels/flamegraph/pkg/tree"
)

// defaultOutputBase names artifacts rendered from standard input.
const defaultOutputBase = "flamegraph"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string  // output base path; a format extension is stripped
	vizType    string  // visualization type: "flame" or "nodelink"
	formats    string  // comma-separated output formats
	config     string  // config file path
	title      string  // header title
	width      float64 // canvas width in pixels
	height     float64 // canvas height in pixels, ignored with autoHeight
	rowHeight  float64 // frame row height
	header     float64 // header band height
	noHeader   bool    // drop the header band
	autoHeight bool    // size the canvas to the visible depth
	palette    string  // frame palette
	unit       string  // metric unit for tooltips and labels
	scale      float64 // PNG pixel density
	static     bool    // omit the SVG zoom script
	maxDepth   int     // node-link depth limit
}

// renderCommand creates the render command for generating visualizations.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		vizType: pipeline.DefaultVizType,
		palette: pipeline.DefaultPalette,
		unit:    pipeline.DefaultUnit,
		scale:   pipeline.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a metric tree to a flame graph",
		Long: `Render a metric tree read from a JSON or TOML file (or "-" for JSON on stdin).

Each node carries a label, a metric and children. A flame graph draws every
node as a frame whose width is proportional to its metric, stacked bottom-up.`,
		Example: `  flamegraph render profile.json
  flamegraph render profile.toml -f svg,png --auto-height -o out/profile
  cat profile.json | flamegraph render - --title "request handler"
  flamegraph render profile.json -t nodelink -f svg,dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			popts, err := opts.pipelineOptions(cmd)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts.output, popts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "output base path (default: input name)")
	flags.StringVarP(&opts.vizType, "type", "t", opts.vizType, "visualization type: flame, nodelink")
	flags.StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot (comma-separated)")
	flags.StringVar(&opts.config, "config", "", "config file (default: $XDG_CONFIG_HOME/flamegraph/config.toml)")
	flags.StringVar(&opts.title, "title", "", "title drawn in the header band")
	flags.Float64Var(&opts.width, "width", 0, "canvas width (default 1920)")
	flags.Float64Var(&opts.height, "height", 0, "canvas height (default 1000)")
	flags.Float64Var(&opts.rowHeight, "row-height", 0, "frame row height (default 18)")
	flags.Float64Var(&opts.header, "header-height", 0, "header band height (default 50)")
	flags.BoolVar(&opts.noHeader, "no-header", false, "drop the header band")
	flags.BoolVar(&opts.autoHeight, "auto-height", false, "size the canvas to the visible depth")
	flags.StringVar(&opts.palette, "palette", opts.palette, "frame palette: orange, hot, cold, threshold")
	flags.StringVar(&opts.unit, "unit", opts.unit, "metric unit shown in tooltips")
	flags.Float64Var(&opts.scale, "scale", opts.scale, "PNG pixel density")
	flags.BoolVar(&opts.static, "static", false, "omit the click-to-zoom script from SVG output")
	flags.IntVar(&opts.maxDepth, "max-depth", 0, "node-link depth limit (0 for all levels)")

	_ = cmd.RegisterFlagCompletionFunc("type", cobra.FixedCompletions(
		[]string{pipeline.VizTypeFlame, pipeline.VizTypeNodelink}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("palette", cobra.FixedCompletions(
		styles.PaletteNames(), cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// pipelineOptions merges flags with the config file. Flags win.
func (o *renderOpts) pipelineOptions(cmd *cobra.Command) (pipeline.Options, error) {
	popts := pipeline.Options{
		VizType:      o.vizType,
		Title:        o.title,
		Width:        o.width,
		Height:       o.height,
		RowHeight:    o.rowHeight,
		HeaderHeight: o.header,
		NoHeader:     o.noHeader,
		AutoHeight:   o.autoHeight,
		MaxDepth:     o.maxDepth,
		Formats:      parseFormats(o.formats),
		Palette:      o.palette,
		Unit:         o.unit,
		Scale:        o.scale,
		Static:       o.static,
		Logger:       loggerFromContext(cmd.Context()),
	}

	path, explicit := o.config, o.config != ""
	if !explicit {
		path = defaultConfigPath()
	}
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		return popts, err
	}
	cfg.apply(&popts, cmd.Flags())

	if err := popts.Validate(); err != nil {
		return popts, err
	}
	return popts, nil
}

// runRender imports the tree at input, renders it, and writes every artifact.
func (c *CLI) runRender(ctx context.Context, input, output string, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	root, err := importTree(ctx, input)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Rendering "+strings.Join(opts.Formats, ", ")+"...")
	spinner.Start()
	result, err := c.newRunner().Execute(ctx, root, opts)
	spinner.Stop()
	if err != nil {
		return err
	}

	base := output
	if base == "" {
		base = defaultBase(input)
	}
	paths, err := c.newRunner().WriteArtifacts(ctx, result, outputBase(base))
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %d artifacts", len(paths)))
	printSuccess(c.Out, "Rendered %s", StyleHighlight.Render(input))
	printStats(c.Out, result.Stats.NodeCount, result.Stats.RectCount, result.Stats.MaxDepth)
	for _, p := range paths {
		printFile(c.Out, p)
	}
	return nil
}

// importTree reads a tree file and reports the import to the observability hooks.
func importTree(ctx context.Context, input string) (*tree.Simple, error) {
	hooks := observability.Pipeline()
	hooks.OnImportStart(ctx, input)
	start := time.Now()

	root, err := pkgio.ImportFile(input)
	count := 0
	if err == nil {
		count = tree.Count(root)
	}
	hooks.OnImportComplete(ctx, input, count, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Debug("imported tree", "source", input, "nodes", count)
	return root, nil
}

// defaultBase derives the output base from the input path.
func defaultBase(input string) string {
	if input == pkgio.Stdin {
		return defaultOutputBase
	}
	return strings.TrimSuffix(input, filepath.Ext(input))
}
