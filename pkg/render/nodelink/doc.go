// Package nodelink renders weighted trees as node-link diagrams.
//
// # Overview
//
// This package produces Graphviz diagrams where every tree node is a box
// connected to its children by arrows. It complements the flame graph when
// the shape of the tree matters more than the proportions of its metrics.
//
// # Usage
//
// Convert a tree to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(root, nodelink.Options{Unit: "ms"})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - MaxDepth: Omit nodes deeper than this level (0 keeps every level)
//   - Unit: Metric unit printed under each label
//   - Detailed: Add the share of the root metric to each label
//   - FrameColor: Fill color per node, using the flame graph palettes
//
// # DOT Format
//
// Node IDs are assigned in pre-order ("n0" is the root), so repeated labels
// stay distinct. Siblings are kept in input order with ordering=out.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
