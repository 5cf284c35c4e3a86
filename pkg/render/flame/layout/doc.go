// Package layout computes frame positions for flame graphs.
//
// # Geometry
//
// The canvas is Width × Height user units with the origin at the top left.
// The top HeaderHeight units are reserved for the title and the details line.
// Frames occupy rows of RowHeight units counted upward from the bottom edge:
// the root row is at y = Height − RowHeight, depth d at y = Height − (d+1)·RowHeight.
// Each frame is drawn one unit narrower and one unit shorter than its slot so
// neighbors are separated by a visible gap.
//
// The root slot is Width − 2·[GraphMargin] wide and starts at [GraphMargin].
// Children are packed left to right in their original order. Their combined
// width is the parent's width times the ratio of their metric sum to the
// parent metric, and the group is centered over the parent.
//
// # Depth Limits
//
// With a fixed height, the number of rows follows from the height. With
// AutoHeight, [EvaluateDepth] finds the deepest level that still has a visible
// frame and the height is derived from that depth.
//
// # Output
//
// [Build] returns a [Layout] whose Rects are in depth-first pre-order. All
// coordinates are float64; rounding to pixels is left to the sinks.
package layout
