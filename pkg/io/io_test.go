package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/flamegraph/pkg/errors"
	"github.com/matzehuels/flamegraph/pkg/tree"
)

const sampleJSON = `{
  "label": "main",
  "metric": 12,
  "children": [
    {"label": "parse", "metric": 4},
    {"label": "eval", "metric": 8, "children": [{"label": "add", "metric": 3}]}
  ]
}`

const sampleTOML = `
label = "main"
metric = 12

[[children]]
label = "parse"
metric = 4

[[children]]
label = "eval"
metric = 8.0

  [[children.children]]
  label = "add"
  metric = 3
`

func sampleTree() *tree.Simple {
	return tree.New("main", 12,
		tree.New("parse", 4),
		tree.New("eval", 8, tree.New("add", 3)),
	)
}

func TestReadJSON(t *testing.T) {
	got, err := ReadJSON(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if diff := cmp.Diff(sampleTree(), got); diff != "" {
		t.Errorf("ReadJSON() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadTOML(t *testing.T) {
	got, err := ReadTOML(strings.NewReader(sampleTOML))
	if err != nil {
		t.Fatalf("ReadTOML() error: %v", err)
	}
	if diff := cmp.Diff(sampleTree(), got); diff != "" {
		t.Errorf("ReadTOML() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		read func(string) error
		in   string
		code errors.Code
	}{
		{"malformed json", readJSON, `{"label": `, errors.ErrCodeInvalidFormat},
		{"null json", readJSON, `null`, errors.ErrCodeInvalidTree},
		{"negative metric", readJSON, `{"label":"a","metric":-1}`, errors.ErrCodeInvalidTree},
		{"nested negative", readJSON, `{"label":"a","metric":1,"children":[{"label":"b","metric":-2}]}`, errors.ErrCodeInvalidTree},
		{"malformed toml", readTOML, `label = `, errors.ErrCodeInvalidFormat},
		{"unknown toml key", readTOML, "label = \"a\"\nmetric = 1\ncolour = \"red\"\n", errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.read(tt.in)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func readJSON(s string) error {
	_, err := ReadJSON(strings.NewReader(s))
	return err
}

func readTOML(s string) error {
	_, err := ReadTOML(strings.NewReader(s))
	return err
}

func TestWriteJSONRoundTrip(t *testing.T) {
	src := tree.New("root", 5, tree.New("a", 2), nil, tree.New("b", 3))

	var buf bytes.Buffer
	if err := WriteJSON(src, &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}

	want := tree.New("root", 5, tree.New("a", 2), tree.New("b", 3))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteJSONNil(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(nil, &buf); !errors.Is(err, errors.ErrCodeInvalidTree) {
		t.Errorf("WriteJSON(nil) error = %v, want %v", err, errors.ErrCodeInvalidTree)
	}
}

func TestImportFile(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "profile.json")
	tomlPath := filepath.Join(dir, "profile.TOML")
	if err := os.WriteFile(jsonPath, []byte(sampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(tomlPath, []byte(sampleTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{jsonPath, tomlPath} {
		got, err := ImportFile(path)
		if err != nil {
			t.Fatalf("ImportFile(%s) error: %v", path, err)
		}
		if diff := cmp.Diff(sampleTree(), got); diff != "" {
			t.Errorf("ImportFile(%s) mismatch (-want +got):\n%s", path, diff)
		}
	}
}

func TestImportFileErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		code errors.Code
	}{
		{"missing file", filepath.Join(dir, "missing.json"), errors.ErrCodeFileNotFound},
		{"unsupported extension", filepath.Join(dir, "profile.txt"), errors.ErrCodeInvalidFormat},
		{"empty path", "", errors.ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ImportFile(tt.path)
			if !errors.Is(err, tt.code) {
				t.Errorf("ImportFile() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestWriteArtifact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "nested", "graph.svg")

	if err := WriteArtifact(path, []byte("<svg/>")); err != nil {
		t.Fatalf("WriteArtifact() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("content = %q, want %q", data, "<svg/>")
	}

	err = WriteArtifact(path, []byte("other"))
	if !errors.Is(err, errors.ErrCodeFileExists) {
		t.Errorf("second WriteArtifact() error = %v, want %v", err, errors.ErrCodeFileExists)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "<svg/>" {
		t.Errorf("existing file was modified: %q", data)
	}
}

func TestWriteArtifactInvalidPath(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"empty", ""},
		{"directory", t.TempDir() + "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := WriteArtifact(tt.path, nil); !errors.Is(err, errors.ErrCodeInvalidPath) {
				t.Errorf("WriteArtifact(%q) error = %v, want %v", tt.path, err, errors.ErrCodeInvalidPath)
			}
		})
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.json")
	if err := ExportJSON(sampleTree(), path); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error: %v", err)
	}
	if diff := cmp.Diff(sampleTree(), got); diff != "" {
		t.Errorf("export/import mismatch (-want +got):\n%s", diff)
	}
	if err := ExportJSON(sampleTree(), path); !errors.Is(err, errors.ErrCodeFileExists) {
		t.Errorf("second ExportJSON() error = %v, want %v", err, errors.ErrCodeFileExists)
	}
}

func TestBundledExamples(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*.*"))
	if err != nil {
		t.Fatalf("Glob() error = %v", err)
	}
	if len(paths) == 0 {
		t.Skip("no bundled examples")
	}
	for _, p := range paths {
		t.Run(filepath.Base(p), func(t *testing.T) {
			root, err := ImportFile(p)
			if err != nil {
				t.Fatalf("ImportFile() error = %v", err)
			}
			if v := tree.Check(root); len(v) != 0 {
				t.Errorf("Check() = %v, want no violations", v)
			}
		})
	}
}
