package tree

// Node is a pointer-based ordered tree node.
type Node[T comparable] struct {
	Value    T          `json:"value"`
	Children []*Node[T] `json:"children,omitempty"`
}

// New returns a childless node holding value.
func New[T comparable](value T) *Node[T] {
	return &Node[T]{Value: value}
}

// Add appends a child holding value and returns it.
func (n *Node[T]) Add(value T) *Node[T] {
	child := New(value)
	n.Children = append(n.Children, child)
	return child
}

// AddNode appends an existing subtree and returns n.
func (n *Node[T]) AddNode(child *Node[T]) *Node[T] {
	n.Children = append(n.Children, child)
	return n
}

// Child returns the i-th child, or nil if i is out of range.
func (n *Node[T]) Child(i int) *Node[T] {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Len returns the number of direct children.
func (n *Node[T]) Len() int { return len(n.Children) }

// Size returns the number of nodes in the subtree rooted at n.
func (n *Node[T]) Size() int {
	size := 0
	BreadthFirst[*Node[T], T](NodeSource[T]{root: n}, func(*Node[T], int) bool {
		size++
		return true
	})
	return size
}

// Depth returns the number of levels in the subtree rooted at n.
func (n *Node[T]) Depth() int {
	depth := 0
	BreadthFirst[*Node[T], T](NodeSource[T]{root: n}, func(_ *Node[T], d int) bool {
		depth = max(depth, d+1)
		return true
	})
	return depth
}

// Equal reports whether two trees have the same shape and values.
func (n *Node[T]) Equal(other *Node[T]) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Value != other.Value || len(n.Children) != len(other.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// Contains reports whether any node in the subtree holds value.
func (n *Node[T]) Contains(value T) bool {
	found := false
	BreadthFirst[*Node[T], T](NodeSource[T]{root: n}, func(node *Node[T], _ int) bool {
		found = node.Value == value
		return !found
	})
	return found
}
