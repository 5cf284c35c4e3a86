package layout

import (
	"image/color"
	"math"

	"github.com/matzehuels/flamegraph/pkg/render/flame/styles"
	"github.com/matzehuels/flamegraph/pkg/tree"
)

// Rect is one positioned frame.
type Rect struct {
	X, Y          float64
	Width, Height float64
	Depth         int
	Label         string  // Full node label, used for tooltips
	Text          string  // Label fitted to the frame width
	Metric        float64 // Node metric
	Color         color.Color
	Parent        int // Index of the parent in Layout.Rects, -1 for the root
}

// Right returns the right edge of the frame.
func (r Rect) Right() float64 { return r.X + r.Width }

// Layout is the result of a layout pass.
type Layout struct {
	Width        float64
	Height       float64
	RowHeight    float64
	HeaderHeight float64
	MaxDepth     int
	Title        string
	Rects        []Rect // Depth-first pre-order, siblings in input order
}

// Depth returns the deepest level present in Rects, or -1 when empty.
func (l *Layout) Depth() int {
	d := -1
	for _, r := range l.Rects {
		d = max(d, r.Depth)
	}
	return d
}

// TextY returns the label baseline for frames at depth.
func (l *Layout) TextY(depth int) float64 {
	return l.Height - float64(depth)*l.RowHeight - 5
}

// maxRows caps the row count derived from the canvas height.
const maxRows = math.MaxInt32

// MaxDepthFor returns the deepest row index that fits in height.
func MaxDepthFor(height, headerHeight, rowHeight float64) int {
	rows := math.Floor((height - headerHeight) / rowHeight)
	switch {
	case math.IsNaN(rows) || rows < 0:
		rows = 0
	case rows > maxRows:
		rows = maxRows
	}
	return int(rows) - 1
}

// Build places root and its descendants. A nil root yields a nil layout and
// no error. Options are defaulted and validated on a copy.
func Build(root tree.Node, opts Options) (*Layout, error) {
	if root == nil {
		return nil, nil
	}
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	budget := opts.WidthBudget()
	height := opts.Height
	var maxDepth int
	if opts.AutoHeight {
		maxDepth = EvaluateDepth(root, budget, opts.Visible)
		height = float64(maxDepth+1)*opts.RowHeight + opts.HeaderHeight
	} else {
		maxDepth = MaxDepthFor(opts.Height, opts.HeaderHeight, opts.RowHeight)
	}

	p := placer{
		height:   height,
		row:      opts.RowHeight,
		maxDepth: maxDepth,
		color:    opts.FrameColor,
	}
	p.place(root, budget, GraphMargin, 0, -1)

	return &Layout{
		Width:        opts.Width,
		Height:       height,
		RowHeight:    opts.RowHeight,
		HeaderHeight: opts.HeaderHeight,
		MaxDepth:     maxDepth,
		Title:        opts.Title,
		Rects:        p.rects,
	}, nil
}

type placer struct {
	height   float64
	row      float64
	maxDepth int
	color    styles.ColorFunc
	rects    []Rect
}

func (p *placer) place(n tree.Node, width, left float64, depth, parent int) {
	if depth > p.maxDepth {
		return
	}
	adjusted := width - 1
	if adjusted < 0 {
		return
	}

	idx := len(p.rects)
	p.rects = append(p.rects, Rect{
		X:      left,
		Y:      p.height - float64(depth+1)*p.row,
		Width:  adjusted,
		Height: p.row - 1,
		Depth:  depth,
		Label:  n.Label(),
		Text:   styles.FitLabel(n.Label(), adjusted-TextMargin),
		Metric: n.Metric(),
		Color:  p.color(n),
		Parent: parent,
	})

	sum := tree.ChildSum(n)
	if sum == 0 || n.Metric() == 0 {
		return
	}
	childrenWidth := width * (sum / n.Metric())
	next := left + (width-childrenWidth)/2
	for _, c := range n.Children() {
		if c == nil {
			continue
		}
		w := c.Metric() / sum * childrenWidth
		p.place(c, w, next, depth+1, idx)
		next += w
	}
}
