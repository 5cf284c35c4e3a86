package styles

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestFitLabel(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float64
		want  string
	}{
		{"truncated", "abcdefghij", 40, "abc.."},
		{"too few characters left", "abcdefghij", 25, " "},
		{"below minimum width", "abc", 10, " "},
		{"fits exactly", "abc", 25, "abc"},
		{"fits with room", "main", 200, "main"},
		{"minimum width boundary", "abcdefghij", MinLabelWidth, " "},
		{"empty stays empty", "", 500, ""},
		{"empty in narrow frame", "", 1, ""},
		{"whitespace unchanged", "   ", 500, "   "},
		{"whitespace in narrow frame", "  ", 2, "  "},
		{"multibyte counts runes", "ÄÖÜäöüß", 50, "ÄÖÜäöüß"},
		{"multibyte truncation", "ÄÖÜäöüßÄÖÜ", 40, "ÄÖÜ.."},
		{"huge width", "abc", math.MaxFloat64, "abc"},
		{"huge width long text", strings.Repeat("x", 100), math.MaxFloat64 / 1e10, strings.Repeat("x", 100)},
		{"infinite width", "abc", math.Inf(1), "abc"},
		{"nan width", "abc", math.NaN(), " "},
		{"negative infinite width", "abc", math.Inf(-1), " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitLabel(tt.text, tt.width); got != tt.want {
				t.Errorf("FitLabel(%q, %v) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestFitLabelNeverExceedsEstimate(t *testing.T) {
	text := strings.Repeat("frame", 20)
	for w := 0.0; w < 800; w += 3.5 {
		got := FitLabel(text, w)
		if got == Placeholder {
			continue
		}
		fit := int(w / (FontSize * GlyphWidthRatio))
		if n := utf8.RuneCountInString(got); n > fit {
			t.Fatalf("FitLabel(_, %v) returned %d runes, fit is %d", w, n, fit)
		}
	}
}

func TestFitMeasured(t *testing.T) {
	// Every rune is 10 units wide.
	measure := func(s string) float64 { return float64(utf8.RuneCountInString(s)) * 10 }

	tests := []struct {
		name  string
		text  string
		width float64
		want  string
	}{
		{"fits", "abc", 31, "abc"},
		{"equal width truncates", "abc", 30, "a.."},
		{"truncated", "abcdefghij", 55, "abc.."},
		{"below minimum width", "abcdef", 10, ""},
		{"nothing fits", "abcdef", 25, ""},
		{"blank text", "   ", 100, "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitMeasured(tt.text, tt.width, measure); got != tt.want {
				t.Errorf("FitMeasured(%q, %v) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestEstimateWidth(t *testing.T) {
	if got, want := EstimateWidth("abcd"), 4*FontSize*GlyphWidthRatio; got != want {
		t.Errorf("EstimateWidth() = %v, want %v", got, want)
	}
}

func TestStripMetric(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"main (12.00 ms)", "main"},
		{"f(x) (3.00 ms)", "f(x)"},
		{"plain", "plain"},
		{"open (", "open ("},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := StripMetric(tt.in); got != tt.want {
				t.Errorf("StripMetric(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a<b>&c", "a&lt;b&gt;&amp;c"},
		{`say "hi" it's`, "say &#34;hi&#34; it&#39;s"},
		{"line\nbreak", "line&#xA;break"},
	}

	for _, tt := range tests {
		if got := EscapeXML(tt.in); got != tt.want {
			t.Errorf("EscapeXML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
