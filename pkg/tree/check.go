package tree

import (
	"math"
	"strings"
)

// Violation describes a node whose metrics make proportional layout
// meaningless.
type Violation struct {
	Path     string  // Labels from the root to the node, joined by " > "
	Depth    int     // Depth of the node (0 for the root)
	Metric   float64 // The node's own metric
	ChildSum float64 // Sum of the children's metrics (0 when Negative is set)
	Negative bool    // The metric itself is negative or NaN
}

// Overflow reports how far the children exceed the parent.
func (v Violation) Overflow() float64 { return v.ChildSum - v.Metric }

// pathSep separates labels in [Violation.Path].
const pathSep = " > "

// Check walks the tree and reports every node with a negative metric or whose
// children's metrics add up to more than its own. The layout engine accepts
// such trees but draws children wider than their parent.
func Check(root Node) []Violation {
	if root == nil {
		return nil
	}
	var out []Violation
	check(root, nil, 0, &out)
	return out
}

func check(n Node, path []string, depth int, out *[]Violation) {
	path = append(path, n.Label())
	m := n.Metric()
	if m < 0 || math.IsNaN(m) {
		*out = append(*out, Violation{Path: strings.Join(path, pathSep), Depth: depth, Metric: m, Negative: true})
	} else if sum := ChildSum(n); sum > m {
		*out = append(*out, Violation{Path: strings.Join(path, pathSep), Depth: depth, Metric: m, ChildSum: sum})
	}
	for _, c := range n.Children() {
		if c == nil {
			continue
		}
		check(c, path, depth+1, out)
	}
}
