// Package io reads and writes weighted trees and writes rendered artifacts.
//
// # Tree Format
//
// A tree is a nested object with a label, a metric, and ordered children:
//
//	{
//	  "label": "main",
//	  "metric": 12,
//	  "children": [
//	    {"label": "parse", "metric": 4},
//	    {"label": "eval", "metric": 8, "children": [{"label": "add", "metric": 3}]}
//	  ]
//	}
//
// The same shape is accepted as TOML, with children as arrays of tables:
//
//	label = "main"
//	metric = 12
//
//	[[children]]
//	label = "parse"
//	metric = 4
//
// Metrics must be finite and non-negative. A node whose children add up to
// more than its own metric is accepted; use [tree.Check] to find such nodes.
//
// # Import
//
// Use [ImportFile] to read a tree from a path, choosing the decoder by file
// extension. "-" reads JSON from standard input. [ReadJSON] and [ReadTOML]
// decode from any io.Reader.
//
// # Export
//
// [WriteJSON] and [ExportJSON] write any [tree.Node] in the JSON format, so a
// tree built in code or through [tree.Adapt] can be saved and re-imported.
//
// # Artifacts
//
// [WriteArtifact] writes rendered output. It creates missing parent
// directories and refuses to overwrite an existing file.
//
// [tree.Check]: github.com/matzehuels/flamegraph/pkg/tree.Check
// [tree.Node]: github.com/matzehuels/flamegraph/pkg/tree.Node
// [tree.Adapt]: github.com/matzehuels/flamegraph/pkg/tree.Adapt
package io
