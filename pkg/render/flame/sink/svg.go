package sink

import (
	"bytes"
	_ "embed"
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/flamegraph/pkg/render/flame/layout"
	"github.com/matzehuels/flamegraph/pkg/render/flame/styles"
)

//go:embed script.js
var flameScript string

// DefaultUnit is the metric unit shown in tooltips.
const DefaultUnit = "ms"

const frameCSS = `
    text { font-family: Verdana, sans-serif; }
    .unit_g:hover rect { stroke: rgb(0,0,0); stroke-width: 0.5; cursor: pointer; }
    #unzoom { cursor: pointer; }`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	unit     string
	noScript bool
}

// WithUnit sets the unit printed after metrics in tooltips. An empty unit
// prints the bare number.
func WithUnit(u string) SVGOption { return func(r *svgRenderer) { r.unit = u } }

// WithoutScript omits the interactive script, producing a static document.
func WithoutScript() SVGOption { return func(r *svgRenderer) { r.noScript = true } }

// RenderSVG renders l as a self-contained SVG document. A nil layout renders
// an empty document of zero size.
func RenderSVG(l *layout.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{unit: DefaultUnit}
	for _, opt := range opts {
		opt(&r)
	}
	if l == nil {
		l = &layout.Layout{}
	}

	w, h := px(l.Width), px(l.Height)

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" standalone="no"?>` + "\n")
	fmt.Fprintf(&buf, `<svg version="1.1" width="%d" height="%d" viewBox="0 0 %d %d" onload="init(evt)" xmlns="http://www.w3.org/2000/svg">`+"\n",
		w, h, w, h)

	renderDefs(&buf)
	if !r.noScript {
		fmt.Fprintf(&buf, "  <script type=\"text/ecmascript\"><![CDATA[\n%s\n  ]]></script>\n", flameScript)
	}
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%d" height="%d" fill="url(#background)"/>`+"\n", w, h)
	renderHeader(&buf, l)

	buf.WriteString("  <g id=\"frames\">\n")
	for _, rect := range l.Rects {
		renderFrame(&buf, l, rect, r.unit)
	}
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <linearGradient id="background" y1="0" y2="1" x1="0" x2="0">
      <stop stop-color="#eeeeee" offset="5%"/>
      <stop stop-color="#eeeeb0" offset="95%"/>
    </linearGradient>
  </defs>
`)
	fmt.Fprintf(buf, "  <style type=\"text/css\">%s\n  </style>\n", frameCSS)
}

func renderHeader(buf *bytes.Buffer, l *layout.Layout) {
	if l.Title != "" {
		fmt.Fprintf(buf, `  <text id="title" x="%d" y="20" text-anchor="middle" font-size="16" fill="%s">%s</text>`+"\n",
			px(l.Width/2), styles.RGB(styles.TitleColor), styles.EscapeXML(l.Title))
	}
	fmt.Fprintf(buf, `  <text id="unzoom" x="%d" y="20" font-size="12" onclick="resetZoom()" style="opacity:0.0">Reset Zoom</text>`+"\n",
		px(layout.GraphMargin))
	fmt.Fprintf(buf, `  <text id="details" x="%d" y="%d" font-size="12"> </text>`+"\n",
		px(layout.GraphMargin), px(max(l.HeaderHeight-10, 32)))
}

func renderFrame(buf *bytes.Buffer, l *layout.Layout, r layout.Rect, unit string) {
	info := Tooltip(r.Label, r.Metric, unit)
	x := px(r.X)
	width := px(r.X+r.Width) - x

	fmt.Fprintf(buf, `    <g class="unit_g" onclick="zoom(this)" onmouseover="s('%s')" onmouseout="c()">`+"\n",
		styles.EscapeXML(escapeJS(info)))
	fmt.Fprintf(buf, "      <title>%s</title>\n", styles.EscapeXML(info))
	fmt.Fprintf(buf, `      <rect x="%d" y="%d" width="%d" height="%d" rx="1" ry="1" fill="%s"/>`+"\n",
		x, px(r.Y), width, px(r.Height), styles.RGB(r.Color))
	fmt.Fprintf(buf, `      <text x="%d" y="%d" font-size="12" font-weight="500" fill="%s">%s</text>`+"\n",
		x+px(layout.TextMargin), px(l.TextY(r.Depth)), styles.RGB(styles.TextColor), styles.EscapeXML(r.Text))
	buf.WriteString("    </g>\n")
}

// Tooltip formats the hover text of a frame, e.g. "main (12.00 ms)".
func Tooltip(label string, metric float64, unit string) string {
	if unit == "" {
		return fmt.Sprintf("%s (%.2f)", label, metric)
	}
	return fmt.Sprintf("%s (%.2f %s)", label, metric, unit)
}

var jsEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)

func escapeJS(s string) string { return jsEscaper.Replace(s) }

func px(v float64) int { return int(math.Round(v)) }
