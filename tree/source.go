package tree

// Source is the capability set encoders need from a tree.
//
// Children must return the direct children of n in insertion order, and
// ChildCount(n) must equal len(Children(n)).
type Source[N any, T comparable] interface {
	Root() N
	Value(n N) T
	Children(n N) []N
	ChildCount(n N) int
}

// NodeSource exposes a *Node tree as a Source.
type NodeSource[T comparable] struct {
	root *Node[T]
}

// FromNode returns a Source reading the tree rooted at root.
func FromNode[T comparable](root *Node[T]) NodeSource[T] {
	return NodeSource[T]{root: root}
}

func (s NodeSource[T]) Root() *Node[T]               { return s.root }
func (NodeSource[T]) Value(n *Node[T]) T             { return n.Value }
func (NodeSource[T]) Children(n *Node[T]) []*Node[T] { return n.Children }
func (NodeSource[T]) ChildCount(n *Node[T]) int      { return len(n.Children) }

// FuncSource adapts an external tree type through plain functions.
//
// CountFn is optional; when nil the child count is len(ChildrenFn(n)).
type FuncSource[N any, T comparable] struct {
	RootNode   N
	ValueFn    func(N) T
	ChildrenFn func(N) []N
	CountFn    func(N) int
}

func (s FuncSource[N, T]) Root() N          { return s.RootNode }
func (s FuncSource[N, T]) Value(n N) T      { return s.ValueFn(n) }
func (s FuncSource[N, T]) Children(n N) []N { return s.ChildrenFn(n) }

func (s FuncSource[N, T]) ChildCount(n N) int {
	if s.CountFn != nil {
		return s.CountFn(n)
	}
	return len(s.ChildrenFn(n))
}
