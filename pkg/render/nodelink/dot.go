package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/flamegraph/pkg/errors"
	"github.com/matzehuels/flamegraph/pkg/render/flame/styles"
	"github.com/matzehuels/flamegraph/pkg/tree"
)

// Options configures node-link diagram rendering.
type Options struct {
	// MaxDepth limits the levels drawn below the root. Zero draws every level.
	MaxDepth int
	// Unit is appended to each metric. Empty prints the bare number.
	Unit string
	// Detailed adds each node's percentage of the root metric to its label.
	Detailed bool
	// FrameColor fills each node. Nil leaves nodes white.
	FrameColor styles.ColorFunc
}

// ToDOT converts a tree to Graphviz DOT format. A nil root yields an empty graph.
func ToDOT(root tree.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  ordering=out;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	if root != nil {
		w := dotWriter{buf: &buf, opts: opts, total: root.Metric()}
		w.node(root, 0, "")
	}

	buf.WriteString("}\n")
	return buf.String()
}

type dotWriter struct {
	buf   *bytes.Buffer
	opts  Options
	total float64
	next  int
}

func (w *dotWriter) node(n tree.Node, depth int, parent string) {
	id := "n" + strconv.Itoa(w.next)
	w.next++

	fmt.Fprintf(w.buf, "  %q [%s];\n", id, w.attrs(n))
	if parent != "" {
		fmt.Fprintf(w.buf, "  %q -> %q;\n", parent, id)
	}

	if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
		return
	}
	for _, c := range n.Children() {
		if c == nil {
			continue
		}
		w.node(c, depth+1, id)
	}
}

func (w *dotWriter) attrs(n tree.Node) string {
	attrs := fmt.Sprintf("label=%q", fmtLabel(n, w.opts, w.total))
	if w.opts.FrameColor != nil {
		attrs += fmt.Sprintf(", fillcolor=%q", styles.Hex(w.opts.FrameColor(n)))
	}
	return attrs
}

func fmtLabel(n tree.Node, opts Options, total float64) string {
	metric := strconv.FormatFloat(n.Metric(), 'f', 2, 64)
	if opts.Unit != "" {
		metric += " " + opts.Unit
	}
	label := n.Label() + "\n" + metric
	if opts.Detailed && total > 0 {
		label += fmt.Sprintf("\n%.1f%%", n.Metric()/total*100)
	}
	return label
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz root element with one whose viewBox
// starts at the origin and whose size matches the drawing.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
