package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/flamegraph/pkg/buildinfo"
	"github.com/matzehuels/flamegraph/pkg/errors"
	"github.com/matzehuels/flamegraph/pkg/render/flame/layout"
	"github.com/matzehuels/flamegraph/pkg/render/flame/sink"
	"github.com/matzehuels/flamegraph/pkg/render/nodelink"
)

// Render generates flame graph artifacts in the requested formats.
func Render(l *layout.Layout, opts Options) (map[string][]byte, error) {
	if l == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no layout to render")
	}
	opts.SetDefaults()

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, svgOptions(opts)...)
		case FormatPNG:
			data, err = sink.RenderPNG(l, sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(l,
				sink.WithSubject(fmt.Sprintf("%d frames, depth %d", len(l.Rects), l.Depth())),
				sink.WithCreator("flamegraph "+buildinfo.Version))
		case FormatJSON:
			data, err = sink.RenderJSON(l,
				sink.WithJSONUnit(opts.Unit),
				sink.WithJSONPalette(opts.Palette))
		default:
			return nil, errors.New(errors.ErrCodeUnsupported, "unsupported flame format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// RenderNodelink generates node-link artifacts from Graphviz source.
func RenderNodelink(ctx context.Context, dot string, opts Options) (map[string][]byte, error) {
	if dot == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nodelink layout missing DOT source")
	}
	opts.SetDefaults()

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = nodelink.RenderSVG(ctx, dot)
		case FormatDOT:
			data = []byte(dot)
		default:
			return nil, errors.New(errors.ErrCodeUnsupported, "unsupported nodelink format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func svgOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithUnit(opts.Unit)}
	if opts.Static {
		svgOpts = append(svgOpts, sink.WithoutScript())
	}
	return svgOpts
}
