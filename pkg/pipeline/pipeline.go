// Package pipeline provides the layout → render pipeline for flame graphs.
//
// This package implements the complete pipeline that the CLI and library
// callers share. By centralizing this logic, every entry point applies the
// same defaults, validation, and format handling.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: Place frames for a flame graph, or emit DOT for a node-link diagram
//  2. Render: Generate output in the requested formats (SVG, PNG, PDF, JSON, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Title:      "request handler",
//	    AutoHeight: true,
//	    Formats:    []string{"svg", "png"},
//	}
//	result, err := runner.Execute(ctx, root, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Write every artifact next to each other:
//
//	paths, err := runner.WriteArtifacts(ctx, result, "out/profile")
//
// Run individual stages:
//
//	l, err := runner.ComputeLayout(ctx, root, opts)
//	artifacts, err := runner.Render(ctx, l, opts)
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/flamegraph/pkg/errors"
	"github.com/matzehuels/flamegraph/pkg/render/flame/layout"
	"github.com/matzehuels/flamegraph/pkg/render/flame/sink"
	"github.com/matzehuels/flamegraph/pkg/render/flame/styles"
	"github.com/matzehuels/flamegraph/pkg/render/nodelink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library Callers
// =============================================================================

const (
	// DefaultScale is the PNG pixel density.
	DefaultScale = 2.0

	// DefaultUnit is the metric unit shown in tooltips and node labels.
	DefaultUnit = sink.DefaultUnit

	// DefaultPalette is the default frame palette.
	DefaultPalette = styles.PaletteOrange
)

// Visualization types.
const (
	VizTypeFlame    = "flame"
	VizTypeNodelink = "nodelink"
)

// DefaultVizType is the default visualization type.
const DefaultVizType = VizTypeFlame

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats across all
// visualization types.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// FormatsByVizType lists the formats each visualization type can produce.
var FormatsByVizType = map[string][]string{
	VizTypeFlame:    {FormatSVG, FormatPNG, FormatPDF, FormatJSON},
	VizTypeNodelink: {FormatSVG, FormatDOT},
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeFlame:    true,
	VizTypeNodelink: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization.
type Options struct {
	// Layout options
	VizType      string  `json:"viz_type,omitempty"`
	Title        string  `json:"title,omitempty"`
	Width        float64 `json:"width,omitempty"`
	Height       float64 `json:"height,omitempty"`
	RowHeight    float64 `json:"row_height,omitempty"`
	HeaderHeight float64 `json:"header_height,omitempty"`
	AutoHeight   bool    `json:"auto_height,omitempty"`
	NoHeader     bool    `json:"no_header,omitempty"` // Drop the title band entirely
	MaxDepth     int     `json:"max_depth,omitempty"` // Node-link depth limit, 0 for all levels

	// Render options
	Formats []string `json:"formats,omitempty"`
	Palette string   `json:"palette,omitempty"`
	Unit    string   `json:"unit,omitempty"`
	Scale   float64  `json:"scale,omitempty"`  // PNG pixel density
	Static  bool     `json:"static,omitempty"` // Omit the SVG script

	// Runtime options (not serialized)
	Logger     *log.Logger      `json:"-"`
	FrameColor styles.ColorFunc `json:"-"` // Overrides Palette when set
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the flame graph layout, nil for node-link diagrams.
	Layout *layout.Layout

	// DOT is the Graphviz source, empty for flame graphs.
	DOT string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	RectCount  int
	MaxDepth   int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateFormatsFor checks that vizType can produce every format.
func ValidateFormatsFor(vizType string, formats []string) error {
	if err := ValidateVizType(vizType); err != nil {
		return err
	}
	supported := FormatsByVizType[vizType]
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
		if !contains(supported, f) {
			return errors.New(errors.ErrCodeUnsupported, "%s output does not support format %q (use one of: %s)",
				vizType, f, strings.Join(supported, ", "))
		}
	}
	return nil
}

// ValidatePalette checks that a palette name is known.
func ValidatePalette(name string) error {
	_, err := styles.Palette(name)
	return err
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidOptions, "invalid viz_type: %q (must be one of: flame, nodelink)", vizType)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills zero fields with their default values. Geometry defaults
// are left to the layout package.
func (o *Options) SetDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Palette == "" {
		o.Palette = DefaultPalette
	}
	if o.Unit == "" {
		o.Unit = DefaultUnit
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate applies defaults and checks every option.
func (o *Options) Validate() error {
	o.SetDefaults()
	if err := ValidateFormatsFor(o.VizType, o.Formats); err != nil {
		return err
	}
	if o.FrameColor == nil {
		if err := ValidatePalette(o.Palette); err != nil {
			return err
		}
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidOptions, "scale must be positive, got %v", o.Scale)
	}
	if o.MaxDepth < 0 {
		return errors.New(errors.ErrCodeInvalidOptions, "max depth must not be negative, got %d", o.MaxDepth)
	}
	if o.IsFlame() {
		lo := o.LayoutOptions()
		lo.SetDefaults()
		return lo.Validate()
	}
	return nil
}

// IsFlame returns true if this is a flame graph visualization.
func (o *Options) IsFlame() bool {
	return o.VizType == "" || o.VizType == VizTypeFlame
}

// IsNodelink returns true if this is a node-link visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == VizTypeNodelink
}

// Colors resolves the frame color function.
func (o *Options) Colors() styles.ColorFunc {
	if o.FrameColor != nil {
		return o.FrameColor
	}
	if fn, err := styles.Palette(o.Palette); err == nil {
		return fn
	}
	return styles.Default()
}

// LayoutOptions returns the flame layout options described by o.
func (o *Options) LayoutOptions() layout.Options {
	lo := layout.Options{
		Title:        o.Title,
		Width:        o.Width,
		Height:       o.Height,
		RowHeight:    o.RowHeight,
		HeaderHeight: o.HeaderHeight,
		AutoHeight:   o.AutoHeight,
		FrameColor:   o.Colors(),
	}
	if o.NoHeader {
		lo = lo.WithHeader(0)
	}
	return lo
}

// NodelinkOptions returns the node-link options described by o.
func (o *Options) NodelinkOptions() nodelink.Options {
	return nodelink.Options{
		MaxDepth:   o.MaxDepth,
		Unit:       o.Unit,
		Detailed:   true,
		FrameColor: o.Colors(),
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
