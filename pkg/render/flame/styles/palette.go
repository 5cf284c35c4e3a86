package styles

import (
	"fmt"
	"hash/fnv"
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/flamegraph/pkg/errors"
	"github.com/matzehuels/flamegraph/pkg/tree"
)

// ColorFunc returns the fill color of the frame drawn for n.
type ColorFunc func(n tree.Node) color.Color

// Named colors used by the built-in palettes.
var (
	DarkOrange = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	OrangeRed  = color.RGBA{R: 255, G: 69, B: 0, A: 255}
	TitleColor = color.RGBA{R: 9, G: 9, B: 9, A: 255}
	TextColor  = color.RGBA{A: 255}
)

// Palette names accepted by [Palette].
const (
	PaletteOrange    = "orange"
	PaletteHot       = "hot"
	PaletteCold      = "cold"
	PaletteThreshold = "threshold"
)

// DefaultThreshold is the metric limit used by the "threshold" palette.
const DefaultThreshold = 10.0

// Constant paints every frame c.
func Constant(c color.Color) ColorFunc {
	return func(tree.Node) color.Color { return c }
}

// Default paints every frame dark orange.
func Default() ColorFunc { return Constant(DarkOrange) }

// Threshold paints frames whose metric exceeds limit with above and the rest
// with below.
func Threshold(limit float64, above, below color.Color) ColorFunc {
	return func(n tree.Node) color.Color {
		if n.Metric() > limit {
			return above
		}
		return below
	}
}

// Hot derives a red-to-yellow color from the node label.
func Hot() ColorFunc {
	return func(n tree.Node) color.Color {
		v1, v2, v3 := labelWeights(n.Label())
		return colorful.Color{
			R: (205 + 50*v3) / 255,
			G: (230 * v1) / 255,
			B: (55 * v2) / 255,
		}.Clamped()
	}
}

// Cold derives a blue-to-green color from the node label.
func Cold() ColorFunc {
	return func(n tree.Node) color.Color {
		v1, v2, _ := labelWeights(n.Label())
		return colorful.Hsv(190+50*v1, 0.45+0.25*v2, 0.85).Clamped()
	}
}

// Palette resolves a palette by name. An empty name selects the orange
// palette.
func Palette(name string) (ColorFunc, error) {
	switch name {
	case "", PaletteOrange:
		return Default(), nil
	case PaletteHot:
		return Hot(), nil
	case PaletteCold:
		return Cold(), nil
	case PaletteThreshold:
		return Threshold(DefaultThreshold, OrangeRed, DarkOrange), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidOptions, "unknown palette %q", name)
}

// PaletteNames lists the names accepted by [Palette] in sorted order.
func PaletteNames() []string {
	names := []string{PaletteOrange, PaletteHot, PaletteCold, PaletteThreshold}
	sort.Strings(names)
	return names
}

// Hex formats c as a "#rrggbb" string, ignoring alpha.
func Hex(c color.Color) string {
	if c == nil {
		c = DarkOrange
	}
	cf, _ := colorful.MakeColor(c)
	return cf.Clamped().Hex()
}

// RGB formats c as an "rgb(r,g,b)" string, ignoring alpha.
func RGB(c color.Color) string {
	if c == nil {
		c = DarkOrange
	}
	cf, _ := colorful.MakeColor(c)
	r, g, b := cf.Clamped().RGB255()
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}

// ParseHex parses a "#rrggbb" or "#rgb" color.
func ParseHex(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidOptions, err, "invalid color %q", s)
	}
	return c, nil
}

// labelWeights returns three stable values in [0,1) derived from label.
func labelWeights(label string) (float64, float64, float64) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(label))
	sum := h.Sum64()
	return float64(sum&0xffff) / 0x10000,
		float64((sum>>16)&0xffff) / 0x10000,
		float64((sum>>32)&0xffff) / 0x10000
}
