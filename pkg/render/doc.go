// Package render groups the visualizations of metric trees.
//
// # Overview
//
// Two renderers share the [tree.Node] input:
//
//   - Flame graphs (in [flame] and its subpackages)
//   - Node-link diagrams (in [nodelink])
//
// # Flame Graphs
//
// A flame graph draws every node as a frame whose width is proportional to
// its metric share of the parent, stacked bottom-up from the root. The
// subpackages split the work:
//   - [flame/layout]: Frame placement, depth evaluation, and canvas sizing
//   - [flame/styles]: Label fitting and frame palettes
//   - [flame/sink]: SVG with click-to-zoom, PNG, PDF, and JSON output
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage emits Graphviz DOT for a tree and renders it to
// SVG through the embedded Graphviz build.
//
// [tree.Node]: github.com/matzehuels/flamegraph/pkg/tree.Node
// [flame]: github.com/matzehuels/flamegraph/pkg/render/flame
// [flame/layout]: github.com/matzehuels/flamegraph/pkg/render/flame/layout
// [flame/styles]: github.com/matzehuels/flamegraph/pkg/render/flame/styles
// [flame/sink]: github.com/matzehuels/flamegraph/pkg/render/flame/sink
// [nodelink]: github.com/matzehuels/flamegraph/pkg/render/nodelink
package render
