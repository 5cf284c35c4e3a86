package tree

// Node is the read-only view the layout engine has over caller data.
type Node interface {
	// Label is the display text of the node.
	Label() string
	// Metric is the non-negative weight that drives the node's width.
	Metric() float64
	// Children returns the ordered child nodes. A nil or empty slice marks a leaf.
	Children() []Node
}

// Simple is a concrete [Node] backed by plain fields.
//
// All accessors are safe to call on a nil *Simple, which behaves like an
// unlabeled leaf with a zero metric.
type Simple struct {
	Content string
	Value   float64
	Kids    []Node
}

// New creates a node with the given label, metric, and children.
func New(label string, metric float64, children ...Node) *Simple {
	return &Simple{Content: label, Value: metric, Kids: children}
}

// Label returns the node's display text.
func (s *Simple) Label() string {
	if s == nil {
		return ""
	}
	return s.Content
}

// Metric returns the node's weight.
func (s *Simple) Metric() float64 {
	if s == nil {
		return 0
	}
	return s.Value
}

// Children returns the node's ordered children.
func (s *Simple) Children() []Node {
	if s == nil {
		return nil
	}
	return s.Kids
}

// Add appends children in order and returns s for chaining.
func (s *Simple) Add(children ...Node) *Simple {
	s.Kids = append(s.Kids, children...)
	return s
}

// Ensure Simple implements Node.
var _ Node = (*Simple)(nil)

// Walk visits n and its descendants depth-first in pre-order, passing each
// node's depth (0 for n). Nil children are skipped. Returning false from fn
// stops descent below the current node but continues with its siblings.
func Walk(n Node, fn func(n Node, depth int) bool) {
	if n == nil {
		return
	}
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children() {
		if c == nil {
			continue
		}
		walk(c, depth+1, fn)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n Node) int {
	total := 0
	Walk(n, func(Node, int) bool {
		total++
		return true
	})
	return total
}

// Height returns the number of levels in the tree rooted at n, ignoring
// metrics. A nil tree has height 0 and a single node has height 1.
func Height(n Node) int {
	h := 0
	Walk(n, func(_ Node, depth int) bool {
		h = max(h, depth+1)
		return true
	})
	return h
}

// ChildSum returns the sum of the metrics of n's non-nil children.
func ChildSum(n Node) float64 {
	var sum float64
	for _, c := range n.Children() {
		if c == nil {
			continue
		}
		sum += c.Metric()
	}
	return sum
}
