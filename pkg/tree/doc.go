// Package tree defines the weighted, ordered tree that flame graphs are built from.
//
// # Overview
//
// A flame graph visualizes a rooted tree where every node carries a label and
// a non-negative metric (elapsed time, sample count, bytes). The layout engine
// only ever sees the [Node] interface, so any caller type can be rendered:
//
//   - Implement [Node] directly on your own type, or
//   - Build a [Simple] tree by hand with [New] and [Simple.Add], or
//   - Copy an arbitrary object graph with [Adapt] by supplying three
//     extraction functions.
//
// # Ordering
//
// Children are ordered. The order returned by [Node.Children] is the
// left-to-right placement order in the rendered graph and is never changed by
// this module.
//
// # Metric Invariant
//
// A node's metric should be at least the sum of its children's metrics for
// proportional widths to be meaningful. The layout engine does not enforce
// this; use [Check] to find nodes that violate it.
//
// # Concurrency
//
// Trees are treated as read-only once handed to the layout engine. Concurrent
// reads are safe; concurrent mutation of a [Simple] tree is not.
package tree
