package styles

import (
	"encoding/xml"
	"html"
	"math"
	"strings"
	"unicode/utf8"
)

// Label geometry. The width estimate of a glyph is FontSize * GlyphWidthRatio.
const (
	FontSize        = 12.0
	GlyphWidthRatio = 0.59
	Ellipsis        = ".."
	Placeholder     = " "
)

// MinLabelWidth is the narrowest frame that can hold any label.
const MinLabelWidth = 2 * FontSize * GlyphWidthRatio

// minFitChars is the fewest characters kept before the ellipsis.
const minFitChars = 2

// FitLabel truncates text to fit width pixels using the fixed glyph estimate.
// Whitespace-only text is returned unchanged. Frames too narrow for a label
// get the single-space [Placeholder], as does a NaN width.
func FitLabel(text string, width float64) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	if !(width >= MinLabelWidth) {
		return Placeholder
	}
	n := utf8.RuneCountInString(text)
	slots := math.Floor(width / (FontSize * GlyphWidthRatio))
	if float64(n) <= slots {
		return text
	}
	// slots < n here, so the conversion cannot overflow.
	fit := int(slots)
	if fit-len(Ellipsis) < minFitChars {
		return Placeholder
	}
	return string([]rune(text)[:fit-len(Ellipsis)]) + Ellipsis
}

// FitMeasured truncates text to fit width using measure to compute the
// rendered width of a string. It keeps the longest rune prefix that fits
// together with the ellipsis, and returns "" when nothing fits.
func FitMeasured(text string, width float64, measure func(string) float64) string {
	if width < MinLabelWidth {
		return ""
	}
	if strings.Trim(text, " ") == "" || measure(text) < width {
		return text
	}
	runes := []rune(text)
	for n := len(runes) - len(Ellipsis); n > 0; n-- {
		candidate := string(runes[:n]) + Ellipsis
		if measure(candidate) <= width {
			return candidate
		}
	}
	return ""
}

// EstimateWidth returns the fixed-glyph width estimate of text in pixels.
func EstimateWidth(text string) float64 {
	return float64(utf8.RuneCountInString(text)) * FontSize * GlyphWidthRatio
}

// StripMetric removes a trailing parenthesized suffix such as " (12.00 ms)"
// from a tooltip title, leaving the bare label.
func StripMetric(title string) string {
	i := strings.LastIndex(title, "(")
	if i < 0 || !strings.HasSuffix(title, ")") {
		return title
	}
	return strings.TrimRight(title[:i], " ")
}

// EscapeXML escapes s for use in SVG text content and attribute values.
func EscapeXML(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return html.EscapeString(s)
	}
	return b.String()
}
