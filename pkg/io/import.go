package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/flamegraph/pkg/errors"
	"github.com/matzehuels/flamegraph/pkg/tree"
)

// Stdin is the path that selects standard input in [ImportFile].
const Stdin = "-"

// Extensions accepted by [ImportFile].
var Extensions = []string{"json", "toml"}

// ReadJSON decodes a JSON tree from r.
//
// ReadJSON returns an INVALID_FORMAT error for malformed JSON and an
// INVALID_TREE error for a null document or an invalid metric. It does not
// close r.
func ReadJSON(r io.Reader) (*tree.Simple, error) {
	var data *node
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
	}
	if data == nil {
		return nil, errors.New(errors.ErrCodeInvalidTree, "document has no root node")
	}
	return data.toTree("")
}

// ReadTOML decodes a TOML tree from r. Keys other than label, metric, and
// children are rejected.
func ReadTOML(r io.Reader) (*tree.Simple, error) {
	var data node
	md, err := toml.NewDecoder(r).Decode(&data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return data.toTree("")
}

// ImportJSON reads the JSON tree file at path.
func ImportJSON(path string) (*tree.Simple, error) {
	return importWith(path, ReadJSON)
}

// ImportTOML reads the TOML tree file at path.
func ImportTOML(path string) (*tree.Simple, error) {
	return importWith(path, ReadTOML)
}

// ImportFile reads a tree from path, selecting the decoder by extension.
// [Stdin] reads JSON from standard input.
func ImportFile(path string) (*tree.Simple, error) {
	if path == Stdin {
		return ReadJSON(os.Stdin)
	}
	if err := errors.ValidateExtension(path, Extensions...); err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ImportTOML(path)
	default:
		return ImportJSON(path)
	}
}

func importWith(path string, read func(io.Reader) (*tree.Simple, error)) (*tree.Simple, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	t, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
