package sink

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/flamegraph/pkg/render/flame/layout"
	"github.com/matzehuels/flamegraph/pkg/render/flame/styles"
	"github.com/matzehuels/flamegraph/pkg/tree"
)

func TestRenderJSON(t *testing.T) {
	root := tree.New("main", 10, tree.New("parse", 4), tree.New("eval", 6))
	l, err := layout.Build(root, layout.Options{
		Title:      "demo",
		Width:      220,
		Height:     100,
		FrameColor: styles.Threshold(5, styles.OrangeRed, styles.DarkOrange),
	})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	data, err := RenderJSON(l, WithJSONUnit("ms"), WithJSONPalette("threshold"))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Title != "demo" || out.Width != 220 || out.Height != 100 {
		t.Errorf("header = %q %vx%v", out.Title, out.Width, out.Height)
	}
	if out.Unit != "ms" || out.Palette != "threshold" {
		t.Errorf("unit/palette = %q/%q", out.Unit, out.Palette)
	}
	if out.MaxDepth != l.MaxDepth {
		t.Errorf("MaxDepth = %v, want %v", out.MaxDepth, l.MaxDepth)
	}
	if len(out.Frames) != 3 {
		t.Fatalf("Frames count = %d, want 3", len(out.Frames))
	}

	tests := []struct {
		label  string
		parent int
		color  string
	}{
		{"main", -1, "#ff4500"},
		{"parse", 0, "#ff8c00"},
		{"eval", 0, "#ff4500"},
	}
	for i, tt := range tests {
		f := out.Frames[i]
		if f.Label != tt.label || f.Parent != tt.parent || f.Color != tt.color {
			t.Errorf("frame %d = %s/%d/%s, want %s/%d/%s", i, f.Label, f.Parent, f.Color, tt.label, tt.parent, tt.color)
		}
	}
}

func TestRenderJSONNilLayout(t *testing.T) {
	data, err := RenderJSON(nil)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.Frames == nil || len(out.Frames) != 0 {
		t.Errorf("Frames = %v, want empty list", out.Frames)
	}
}
