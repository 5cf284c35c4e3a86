// Package sink renders flame graph layouts to output formats.
//
// # Formats
//
//   - [RenderSVG]: interactive SVG with an embedded script for click-to-zoom,
//     hover details, and label re-fitting with real glyph widths.
//   - [RenderPNG]: raster image drawn with tdewolff/canvas and the Go font.
//   - [RenderPDF]: vector PDF drawn with tdewolff/canvas.
//   - [RenderJSON]: the positioned frames as a JSON document.
//
// Layout coordinates are float64. The SVG sink rounds the left and right edge
// of every frame to whole pixels independently, so adjacent siblings stay
// adjacent after rounding. The PNG and PDF sinks draw at full precision.
package sink
