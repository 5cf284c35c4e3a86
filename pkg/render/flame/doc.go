// Package flame provides the flame graph visualization engine.
//
// # Overview
//
// A flame graph stacks one row of frames per tree level. The root spans the
// full drawing width at the bottom, and every child sits above its parent
// with a width proportional to its share of the parent's metric. This package
// groups the stages that turn a [tree.Node] into a finished document:
//
//  1. Layout ([layout]): Resolve the depth limit and canvas height, then place every frame.
//  2. Styles ([styles]): Fit labels into frames and pick frame colors.
//  3. Sink ([sink]): Export the layout as interactive SVG, PNG, PDF, or JSON.
//
// # Rendering Pipeline
//
//	root := tree.New("main", 12, tree.New("parse", 4), tree.New("eval", 8))
//
//	// 1. Compute the layout
//	l, err := layout.Build(root, layout.Options{Title: "main", AutoHeight: true})
//
//	// 2. Render to a specific format
//	svg := sink.RenderSVG(l, sink.WithUnit("ms"))
//
// [tree.Node]: github.com/matzehuels/flamegraph/pkg/tree.Node
// [layout]: github.com/matzehuels/flamegraph/pkg/render/flame/layout
// [styles]: github.com/matzehuels/flamegraph/pkg/render/flame/styles
// [sink]: github.com/matzehuels/flamegraph/pkg/render/flame/sink
package flame
