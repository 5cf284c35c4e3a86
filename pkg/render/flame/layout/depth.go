package layout

import "github.com/matzehuels/flamegraph/pkg/tree"

// VisibleMinWidth is the slot width a frame must exceed to count as visible
// when sizing the canvas.
const VisibleMinWidth = 1.0

// VisibilityFunc decides whether a node is wide enough to count toward the
// depth of the graph.
type VisibilityFunc func(n tree.Node) bool

// DefaultVisibility returns the predicate that keeps nodes whose proportional
// share of widthBudget exceeds [VisibleMinWidth]. When the root metric is not
// positive no node other than the root is visible.
func DefaultVisibility(root tree.Node, widthBudget float64) VisibilityFunc {
	total := root.Metric()
	if total <= 0 {
		return func(tree.Node) bool { return false }
	}
	return func(n tree.Node) bool {
		return n.Metric()/total*widthBudget > VisibleMinWidth
	}
}

// EvaluateDepth returns the number of levels, counting the root, that contain
// at least one visible node. Levels are expanded breadth first; only visible
// children are followed. A nil visible selects [DefaultVisibility].
func EvaluateDepth(root tree.Node, widthBudget float64, visible VisibilityFunc) int {
	if root == nil {
		return 0
	}
	if visible == nil {
		visible = DefaultVisibility(root, widthBudget)
	}

	depth := 0
	level := []tree.Node{root}
	for len(level) > 0 {
		depth++
		var next []tree.Node
		for _, n := range level {
			for _, c := range n.Children() {
				if c != nil && visible(c) {
					next = append(next, c)
				}
			}
		}
		level = next
	}
	return depth
}
