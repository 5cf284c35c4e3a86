package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/flamegraph/pkg/render/flame/styles"
	"github.com/matzehuels/flamegraph/pkg/tree"
)

func sampleTree() *tree.Simple {
	return tree.New("main", 10,
		tree.New("parse", 4),
		tree.New("eval", 6, tree.New("parse", 2)),
	)
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(sampleTree(), Options{Unit: "ms"})

	wants := []string{
		"digraph G",
		"ordering=out",
		`"n0" [label="main\n10.00 ms"]`,
		`"n0" -> "n1"`,
		`"n0" -> "n2"`,
		`"n2" -> "n3"`,
		`"n3" [label="parse\n2.00 ms"]`,
	}
	for _, want := range wants {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q", want)
		}
	}
}

func TestToDOT_NilRoot(t *testing.T) {
	dot := ToDOT(nil, Options{})
	if strings.Contains(dot, "->") || strings.Contains(dot, `"n0"`) {
		t.Errorf("ToDOT(nil) emitted nodes:\n%s", dot)
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Error("ToDOT(nil) graph not closed")
	}
}

func TestToDOT_MaxDepth(t *testing.T) {
	dot := ToDOT(sampleTree(), Options{MaxDepth: 1})
	if strings.Contains(dot, `"n3"`) {
		t.Error("ToDOT() drew a node below MaxDepth")
	}
	if !strings.Contains(dot, `"n2"`) {
		t.Error("ToDOT() dropped a node within MaxDepth")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(sampleTree(), Options{Detailed: true})
	if !strings.Contains(dot, `label="eval\n6.00\n60.0%"`) {
		t.Errorf("ToDOT() detailed output missing share:\n%s", dot)
	}
}

func TestToDOT_FrameColor(t *testing.T) {
	dot := ToDOT(sampleTree(), Options{FrameColor: styles.Threshold(5, styles.OrangeRed, styles.DarkOrange)})
	if !strings.Contains(dot, `fillcolor="#ff4500"`) {
		t.Error("ToDOT() missing color above threshold")
	}
	if !strings.Contains(dot, `fillcolor="#ff8c00"`) {
		t.Error("ToDOT() missing color below threshold")
	}
}

func TestFmtLabel(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		total float64
		want  string
	}{
		{"bare", Options{}, 10, "eval\n6.00"},
		{"unit", Options{Unit: "ms"}, 10, "eval\n6.00 ms"},
		{"detailed", Options{Detailed: true}, 12, "eval\n6.00\n50.0%"},
		{"detailed zero total", Options{Detailed: true}, 0, "eval\n6.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fmtLabel(tree.New("eval", 6), tt.opts, tt.total); got != tt.want {
				t.Errorf("fmtLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %q, want %q", got, want)
	}

	plain := []byte(`<svg><g/></svg>`)
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("normalizeViewBox() changed an SVG without viewBox: %q", got)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(sampleTree(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output is not SVG")
	}
	if !strings.Contains(string(svg), "eval") {
		t.Error("RenderSVG() output missing node label")
	}
}
