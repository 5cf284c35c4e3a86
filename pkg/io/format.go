package io

import (
	"math"

	"github.com/matzehuels/flamegraph/pkg/errors"
	"github.com/matzehuels/flamegraph/pkg/tree"
)

type node struct {
	Label    string  `json:"label" toml:"label"`
	Metric   float64 `json:"metric" toml:"metric"`
	Children []node  `json:"children,omitempty" toml:"children,omitempty"`
}

// toTree converts a decoded node into a tree, validating metrics.
func (n node) toTree(path string) (*tree.Simple, error) {
	if path == "" {
		path = n.Label
	} else {
		path += " > " + n.Label
	}
	if math.IsNaN(n.Metric) || math.IsInf(n.Metric, 0) || n.Metric < 0 {
		return nil, errors.New(errors.ErrCodeInvalidTree, "node %q: metric must be finite and non-negative, got %v", path, n.Metric)
	}
	out := tree.New(n.Label, n.Metric)
	for _, c := range n.Children {
		child, err := c.toTree(path)
		if err != nil {
			return nil, err
		}
		out.Add(child)
	}
	return out, nil
}

// fromTree converts any tree into its serializable form. Nil children are dropped.
func fromTree(n tree.Node) node {
	out := node{Label: n.Label(), Metric: n.Metric()}
	for _, c := range n.Children() {
		if c == nil {
			continue
		}
		out.Children = append(out.Children, fromTree(c))
	}
	return out
}
