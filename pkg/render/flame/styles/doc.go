// Package styles provides label fitting and frame color providers for flame
// graph rendering.
//
// # Label Fitting
//
// [FitLabel] estimates how much of a label fits in a frame using a fixed
// per-glyph width ([FontSize] × [GlyphWidthRatio]). It runs at layout time and
// needs no font. [FitMeasured] runs the same truncation with a caller-supplied
// text measuring function and is used by the raster and PDF sinks, which know
// their font. Both truncate with the [Ellipsis] "..".
//
// # Colors
//
// A [ColorFunc] maps a tree node to its frame fill. [Default] paints every
// frame dark orange. [Threshold] paints frames above a metric limit in one
// color and the rest in another. [Hot] and [Cold] derive a stable color from
// the node label, so the same function keeps its color across renders.
// [Palette] resolves these by name for configuration files and flags.
package styles
