package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/flamegraph/pkg/errors"
	"github.com/matzehuels/flamegraph/pkg/tree"
)

// WriteJSON encodes n as an indented JSON tree and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(n tree.Node, w io.Writer) error {
	if n == nil {
		return errors.New(errors.ErrCodeInvalidTree, "cannot encode a nil tree")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fromTree(n)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes n to a new JSON file at path. Existing files are not
// overwritten.
func ExportJSON(n tree.Node, path string) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	if err := WriteJSON(n, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteArtifact writes data to a new file at path, creating parent
// directories as needed. It returns a FILE_EXISTS error if path exists and an
// INVALID_PATH error if path is empty or names a directory.
func WriteArtifact(path string, data []byte) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func create(path string) (*os.File, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileExists, err, "%s already exists", path)
		}
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}
