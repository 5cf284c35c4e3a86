package layout

import (
	"math"

	"github.com/matzehuels/flamegraph/pkg/errors"
	"github.com/matzehuels/flamegraph/pkg/render/flame/styles"
)

// Default canvas geometry.
const (
	DefaultWidth        = 1920.0
	DefaultHeight       = 1000.0
	DefaultRowHeight    = 18.0
	DefaultHeaderHeight = 50.0
)

// GraphMargin is the horizontal margin on each side of the frame area.
const GraphMargin = 10.0

// TextMargin is the horizontal inset of a label inside its frame.
const TextMargin = 3.0

// Options controls a layout pass. Zero values select the defaults.
type Options struct {
	Title        string
	Width        float64
	Height       float64 // Ignored when AutoHeight is set
	RowHeight    float64
	HeaderHeight float64
	AutoHeight   bool
	FrameColor   styles.ColorFunc // Defaults to styles.Default()
	Visible      VisibilityFunc   // Used by AutoHeight; defaults to DefaultVisibility

	// headerSet records that HeaderHeight was given explicitly, so that an
	// explicit zero header survives SetDefaults.
	headerSet bool
}

// WithHeader returns a copy of o with an explicit header height, including zero.
func (o Options) WithHeader(h float64) Options {
	o.HeaderHeight = h
	o.headerSet = true
	return o
}

// SetDefaults fills zero fields with their default values.
func (o *Options) SetDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 && !o.AutoHeight {
		o.Height = DefaultHeight
	}
	if o.RowHeight == 0 {
		o.RowHeight = DefaultRowHeight
	}
	if o.HeaderHeight == 0 && !o.headerSet {
		o.HeaderHeight = DefaultHeaderHeight
	}
	if o.FrameColor == nil {
		o.FrameColor = styles.Default()
	}
}

// Validate reports geometry that cannot produce a layout.
func (o *Options) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"width", o.Width},
		{"height", o.Height},
		{"row height", o.RowHeight},
		{"header height", o.HeaderHeight},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return errors.New(errors.ErrCodeInvalidOptions, "%s must be finite, got %v", f.name, f.v)
		}
	}
	if o.RowHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidOptions, "row height must be positive, got %v", o.RowHeight)
	}
	if o.HeaderHeight < 0 {
		return errors.New(errors.ErrCodeInvalidOptions, "header height must not be negative, got %v", o.HeaderHeight)
	}
	if o.Width <= 2*GraphMargin {
		return errors.New(errors.ErrCodeInvalidOptions, "width must exceed %v, got %v", 2*GraphMargin, o.Width)
	}
	if !o.AutoHeight && o.Height <= o.HeaderHeight {
		return errors.New(errors.ErrCodeInvalidOptions, "height %v leaves no room below header %v", o.Height, o.HeaderHeight)
	}
	return nil
}

// WidthBudget is the width of the root frame slot.
func (o *Options) WidthBudget() float64 { return o.Width - 2*GraphMargin }
