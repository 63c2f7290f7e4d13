package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/flattree/tree"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// TreeShape bounds a generated tree.
type TreeShape struct {
	// Nodes is the total number of nodes, at least 1.
	Nodes int
	// MaxFanout caps the child count of any node.
	MaxFanout int
	// ValueRange draws node values from [0, ValueRange). Small ranges produce
	// equal sibling values.
	ValueRange int64
}

// Tree generates a random tree with exactly shape.Nodes nodes.
// Values are never negative, so -1 is always a safe sentinel.
func (r *RNG) Tree(shape TreeShape) *tree.Node[int64] {
	r.mu.Lock()
	defer r.mu.Unlock()

	nodes := max(shape.Nodes, 1)
	valueRange := max(shape.ValueRange, 1)
	fanout := max(shape.MaxFanout, 1)

	root := tree.New(r.rand.Int63n(valueRange))
	open := []*tree.Node[int64]{root}
	for created := 1; created < nodes; created++ {
		i := r.rand.Intn(len(open))
		parent := open[i]
		child := parent.Add(r.rand.Int63n(valueRange))
		open = append(open, child)
		if parent.Len() == fanout {
			open[i] = open[len(open)-1]
			open = open[:len(open)-1]
		}
	}
	return root
}

// Path returns a random root-to-node value path of root.
func (r *RNG) Path(root *tree.Node[int64]) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	path := []int64{root.Value}
	for n := root; n.Len() > 0 && r.rand.Intn(4) != 0; {
		n = n.Child(r.rand.Intn(n.Len()))
		path = append(path, n.Value)
	}
	return path
}

// ChildrenByPath is the pointer-walking reference for flat path queries:
// it descends through the left-most child equal to each path element.
func ChildrenByPath[T comparable](root *tree.Node[T], path []T) ([]T, bool) {
	if root == nil || len(path) == 0 || root.Value != path[0] {
		return nil, false
	}
	n := root
	for _, v := range path[1:] {
		var next *tree.Node[T]
		for _, c := range n.Children {
			if c.Value == v {
				next = c
				break
			}
		}
		if next == nil {
			return nil, false
		}
		n = next
	}
	out := make([]T, 0, n.Len())
	for _, c := range n.Children {
		out = append(out, c.Value)
	}
	return out, true
}

// ExampleTree returns the eight node tree used throughout the tests:
//
//	0 -> {1, 2}, 1 -> {3, 4}, 2 -> {5, 6}, 6 -> {7}
func ExampleTree() *tree.Node[int64] {
	root := tree.New[int64](0)
	one := root.Add(1)
	two := root.Add(2)
	one.Add(3)
	one.Add(4)
	two.Add(5)
	two.Add(6).Add(7)
	return root
}
