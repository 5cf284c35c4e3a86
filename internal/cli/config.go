package cli

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/matzehuels/flamegraph/pkg/errors"
	"github.com/matzehuels/flamegraph/pkg/pipeline"
)

// fileConfig is the on-disk CLI configuration. Zero values leave the
// corresponding option untouched.
type fileConfig struct {
	Title        string   `toml:"title"`
	Width        float64  `toml:"width"`
	Height       float64  `toml:"height"`
	RowHeight    float64  `toml:"row_height"`
	HeaderHeight float64  `toml:"header_height"`
	AutoHeight   bool     `toml:"auto_height"`
	Palette      string   `toml:"palette"`
	Unit         string   `toml:"unit"`
	Formats      []string `toml:"formats"`
}

// loadConfig reads the config file at path. A missing file at the default
// location is not an error; a missing file named explicitly is.
func loadConfig(path string, explicit bool) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return cfg, err
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidFormat, "config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// apply copies config values into opts for every flag the user did not set.
func (f fileConfig) apply(opts *pipeline.Options, flags *pflag.FlagSet) {
	unset := func(name string) bool {
		fl := flags.Lookup(name)
		return fl == nil || !fl.Changed
	}

	if f.Title != "" && unset("title") {
		opts.Title = f.Title
	}
	if f.Width != 0 && unset("width") {
		opts.Width = f.Width
	}
	if f.Height != 0 && unset("height") {
		opts.Height = f.Height
	}
	if f.RowHeight != 0 && unset("row-height") {
		opts.RowHeight = f.RowHeight
	}
	if f.HeaderHeight != 0 && unset("header-height") {
		opts.HeaderHeight = f.HeaderHeight
	}
	if f.AutoHeight && unset("auto-height") {
		opts.AutoHeight = true
	}
	if f.Palette != "" && unset("palette") {
		opts.Palette = f.Palette
	}
	if f.Unit != "" && unset("unit") {
		opts.Unit = f.Unit
	}
	if len(f.Formats) > 0 && unset("format") {
		opts.Formats = f.Formats
	}
}
