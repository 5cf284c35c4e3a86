package pipeline

import (
	"github.com/matzehuels/flamegraph/pkg/errors"
	"github.com/matzehuels/flamegraph/pkg/render/flame/layout"
	"github.com/matzehuels/flamegraph/pkg/render/nodelink"
	"github.com/matzehuels/flamegraph/pkg/tree"
)

// =============================================================================
// Flame
// =============================================================================

// GenerateLayout places the frames of root for a flame graph.
func GenerateLayout(root tree.Node, opts Options) (*layout.Layout, error) {
	if root == nil {
		return nil, errors.New(errors.ErrCodeInvalidTree, "tree has no root")
	}
	return layout.Build(root, opts.LayoutOptions())
}

// =============================================================================
// Nodelink
// =============================================================================

// GenerateDOT returns the Graphviz source for a node-link diagram of root.
func GenerateDOT(root tree.Node, opts Options) string {
	return nodelink.ToDOT(root, opts.NodelinkOptions())
}
