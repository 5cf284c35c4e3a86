// Package pkg provides the core libraries for flame graph rendering.
//
// # Overview
//
// The pkg directory is organized by stage:
//
//  1. [tree] - The metric tree model, adapters, and consistency checks
//  2. [io] - JSON and TOML tree files, artifact writing
//  3. [render] - Flame graph layout and sinks, node-link diagrams
//  4. [pipeline] - Orchestration (layout → render → write)
//  5. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	Tree file or caller-owned tree
//	         ↓
//	    [io] or [tree.Adapt] (build a tree.Node)
//	         ↓
//	    [render/flame/layout] (place frames)
//	         ↓
//	    [render/flame/sink] (SVG/PNG/PDF/JSON output)
//
// # Quick Start
//
//	import (
//	    "context"
//
//	    "github.com/matzehuels/flamegraph/pkg/pipeline"
//	    "github.com/matzehuels/flamegraph/pkg/tree"
//	)
//
//	root := tree.New("main", 100,
//	    tree.New("parse", 30),
//	    tree.New("render", 60),
//	)
//	result, err := pipeline.NewRunner(nil).Execute(context.Background(), root, pipeline.Options{
//	    Title:      "request handler",
//	    AutoHeight: true,
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
//
// [tree]: github.com/matzehuels/flamegraph/pkg/tree
// [tree.Adapt]: github.com/matzehuels/flamegraph/pkg/tree.Adapt
// [io]: github.com/matzehuels/flamegraph/pkg/io
// [render]: github.com/matzehuels/flamegraph/pkg/render
// [render/flame/layout]: github.com/matzehuels/flamegraph/pkg/render/flame/layout
// [render/flame/sink]: github.com/matzehuels/flamegraph/pkg/render/flame/sink
// [pipeline]: github.com/matzehuels/flamegraph/pkg/pipeline
// [errors]: github.com/matzehuels/flamegraph/pkg/errors
// [observability]: github.com/matzehuels/flamegraph/pkg/observability
// [buildinfo]: github.com/matzehuels/flamegraph/pkg/buildinfo
package pkg
