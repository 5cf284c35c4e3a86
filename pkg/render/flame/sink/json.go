package sink

import (
	"encoding/json"

	"github.com/matzehuels/flamegraph/pkg/render/flame/layout"
	"github.com/matzehuels/flamegraph/pkg/render/flame/styles"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	unit    string
	palette string
}

// WithJSONUnit records the metric unit in the output.
func WithJSONUnit(u string) JSONOption { return func(r *jsonRenderer) { r.unit = u } }

// WithJSONPalette records the palette name in the output.
func WithJSONPalette(p string) JSONOption { return func(r *jsonRenderer) { r.palette = p } }

type jsonOutput struct {
	Title        string      `json:"title,omitempty"`
	Width        float64     `json:"width"`
	Height       float64     `json:"height"`
	RowHeight    float64     `json:"row_height"`
	HeaderHeight float64     `json:"header_height"`
	MaxDepth     int         `json:"max_depth"`
	Unit         string      `json:"unit,omitempty"`
	Palette      string      `json:"palette,omitempty"`
	Frames       []jsonFrame `json:"frames"`
}

type jsonFrame struct {
	Label  string  `json:"label"`
	Text   string  `json:"text"`
	Metric float64 `json:"metric"`
	Depth  int     `json:"depth"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Color  string  `json:"color"`
	Parent int     `json:"parent"`
}

// RenderJSON exports the positioned frames as a pretty-printed JSON document.
// Frames keep the layout's depth-first order and parent indices, so the tree
// can be reconstructed from the output. A nil layout yields an empty frame list.
func RenderJSON(l *layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if l == nil {
		l = &layout.Layout{}
	}

	out := jsonOutput{
		Title:        l.Title,
		Width:        l.Width,
		Height:       l.Height,
		RowHeight:    l.RowHeight,
		HeaderHeight: l.HeaderHeight,
		MaxDepth:     l.MaxDepth,
		Unit:         r.unit,
		Palette:      r.palette,
		Frames:       make([]jsonFrame, 0, len(l.Rects)),
	}
	for _, rect := range l.Rects {
		out.Frames = append(out.Frames, jsonFrame{
			Label:  rect.Label,
			Text:   rect.Text,
			Metric: rect.Metric,
			Depth:  rect.Depth,
			X:      rect.X,
			Y:      rect.Y,
			Width:  rect.Width,
			Height: rect.Height,
			Color:  styles.Hex(rect.Color),
			Parent: rect.Parent,
		})
	}

	return json.MarshalIndent(out, "", "  ")
}
