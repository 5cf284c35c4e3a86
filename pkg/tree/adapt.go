package tree

import (
	"github.com/matzehuels/flamegraph/pkg/errors"
)

// Adapt copies an arbitrary caller tree rooted at root into a [Simple] tree.
//
// The three extraction functions are evaluated exactly once per node, at
// construction time, so later changes to the caller's objects are not
// reflected in the returned tree. Children order is preserved. A nil result
// from children marks a leaf.
//
// Adapt returns an INVALID_INPUT error if any extraction function is nil.
// The caller's tree must be acyclic.
func Adapt[T any](root T, label func(T) string, metric func(T) float64, children func(T) []T) (*Simple, error) {
	if label == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "label function is required")
	}
	if metric == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "metric function is required")
	}
	if children == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "children function is required")
	}
	return adapt(root, label, metric, children), nil
}

func adapt[T any](item T, label func(T) string, metric func(T) float64, children func(T) []T) *Simple {
	kids := children(item)
	n := &Simple{Content: label(item), Value: metric(item)}
	if len(kids) > 0 {
		n.Kids = make([]Node, 0, len(kids))
		for _, k := range kids {
			n.Kids = append(n.Kids, adapt(k, label, metric, children))
		}
	}
	return n
}

// Clone returns a deep [Simple] copy of any [Node] tree. Nil children are dropped.
func Clone(n Node) *Simple {
	if n == nil {
		return nil
	}
	out := &Simple{Content: n.Label(), Value: n.Metric()}
	for _, c := range n.Children() {
		if c == nil {
			continue
		}
		out.Kids = append(out.Kids, Clone(c))
	}
	return out
}
