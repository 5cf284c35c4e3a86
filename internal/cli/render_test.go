package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/flamegraph/pkg/errors"
)

const sampleJSON = `{
  "label": "main",
  "metric": 100,
  "children": [
    {"label": "parse", "metric": 30},
    {"label": "render", "metric": 60, "children": [{"label": "draw", "metric": 35}]}
  ]
}`

func writeTree(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestRenderCommand(t *testing.T) {
	c, _ := newTestCLI(t)
	dir := t.TempDir()
	input := writeTree(t, dir, "profile.json", sampleJSON)
	base := filepath.Join(dir, "out", "flame")

	root := c.RootCommand()
	root.SetArgs([]string{"render", input, "-o", base + ".svg", "-f", "svg,json", "--title", "request", "--auto-height"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatalf("ReadFile(svg) error = %v", err)
	}
	if !strings.Contains(string(svg), "request") {
		t.Error("svg missing title")
	}
	if _, err := os.Stat(base + ".json"); err != nil {
		t.Errorf("json artifact missing: %v", err)
	}
}

func TestRenderCommandDefaultOutput(t *testing.T) {
	c, _ := newTestCLI(t)
	dir := t.TempDir()
	input := writeTree(t, dir, "tree.json", sampleJSON)

	root := c.RootCommand()
	root.SetArgs([]string{"render", input, "--static"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	svg, err := os.ReadFile(filepath.Join(dir, "tree.svg"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if strings.Contains(string(svg), "<script") {
		t.Error("--static output should not embed the script")
	}
}

func TestRenderCommandConfig(t *testing.T) {
	c, _ := newTestCLI(t)
	dir := t.TempDir()
	input := writeTree(t, dir, "tree.json", sampleJSON)
	cfg := writeTree(t, dir, "config.toml", "title = \"from config\"\nformats = [\"svg\", \"json\"]\n")
	base := filepath.Join(dir, "out")

	root := c.RootCommand()
	root.SetArgs([]string{"render", input, "--config", cfg, "-o", base})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(svg), "from config") {
		t.Error("svg missing title from config")
	}
	if _, err := os.Stat(base + ".json"); err != nil {
		t.Errorf("config formats not applied: %v", err)
	}
}

func TestRenderCommandNodelink(t *testing.T) {
	c, _ := newTestCLI(t)
	dir := t.TempDir()
	input := writeTree(t, dir, "tree.json", sampleJSON)
	base := filepath.Join(dir, "graph")

	root := c.RootCommand()
	root.SetArgs([]string{"render", input, "-t", "nodelink", "-f", "dot", "-o", base})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	dot, err := os.ReadFile(base + ".dot")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(dot), `"n0" -> "n1"`) {
		t.Errorf("dot missing root edge:\n%s", dot)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeTree(t, dir, "tree.json", sampleJSON)

	tests := []struct {
		name     string
		args     []string
		wantCode errors.Code
	}{
		{"missing file", []string{"render", filepath.Join(dir, "nope.json")}, errors.ErrCodeFileNotFound},
		{"bad format", []string{"render", input, "-f", "gif"}, errors.ErrCodeInvalidFormat},
		{"nodelink png", []string{"render", input, "-t", "nodelink", "-f", "png"}, errors.ErrCodeUnsupported},
		{"bad palette", []string{"render", input, "--palette", "rainbow"}, errors.ErrCodeInvalidOptions},
		{"missing config", []string{"render", input, "--config", filepath.Join(dir, "none.toml")}, errors.ErrCodeFileNotFound},
		{"infinite width", []string{"render", input, "--width", "+Inf"}, errors.ErrCodeInvalidOptions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCLI(t)
			root := c.RootCommand()
			root.SetArgs(tt.args)
			err := root.Execute()
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Execute() code = %v, want %v (err %v)", errors.GetCode(err), tt.wantCode, err)
			}
		})
	}
}

func TestRenderCommandNoOverwrite(t *testing.T) {
	c, _ := newTestCLI(t)
	dir := t.TempDir()
	input := writeTree(t, dir, "tree.json", sampleJSON)

	for i, wantErr := range []bool{false, true} {
		root := c.RootCommand()
		root.SetArgs([]string{"render", input})
		err := root.Execute()
		if (err != nil) != wantErr {
			t.Fatalf("run %d: Execute() error = %v, wantErr %v", i, err, wantErr)
		}
		if wantErr && !errors.Is(err, errors.ErrCodeFileExists) {
			t.Errorf("run %d: code = %v, want %v", i, errors.GetCode(err), errors.ErrCodeFileExists)
		}
	}
}
