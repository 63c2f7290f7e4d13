package compact

import (
	"fmt"

	"github.com/hupe1980/flattree/core"
	"github.com/hupe1980/flattree/internal/conv"
	"github.com/hupe1980/flattree/tree"
)

// Tree is an immutable compact encoding.
type Tree[T comparable] struct {
	values      []T
	offsetEnds  []uint64
	maxChildren uint64
}

// Encode flattens src into a compact Tree.
func Encode[N any, T comparable](src tree.Source[N, T]) *Tree[T] {
	t := &Tree[T]{}
	sum := uint64(0)
	tree.BreadthFirst(src, func(n N, _ int) bool {
		count := uint64(src.ChildCount(n))
		sum += count
		t.values = append(t.values, src.Value(n))
		t.offsetEnds = append(t.offsetEnds, sum)
		t.maxChildren = max(t.maxChildren, count)
		return true
	})
	return t
}

// FromParts rebuilds a Tree from its breadth-first values and cumulative
// child counts.
func FromParts[T comparable](values []T, childrenOffsetEnds []uint64) (*Tree[T], error) {
	n := len(values)
	if n == 0 || len(childrenOffsetEnds) != n {
		return nil, fmt.Errorf("%w: %d values, %d offsets", core.ErrCorrupt, n, len(childrenOffsetEnds))
	}

	t := &Tree[T]{values: values, offsetEnds: childrenOffsetEnds}
	prev := uint64(0)
	for i, end := range childrenOffsetEnds {
		if end < prev {
			return nil, fmt.Errorf("%w: offset %d decreases", core.ErrCorrupt, i)
		}
		// every node but the root must be a child of an earlier node
		if i < n-1 && end < uint64(i)+1 {
			return nil, fmt.Errorf("%w: node %d has no parent", core.ErrCorrupt, i+1)
		}
		t.maxChildren = max(t.maxChildren, end-prev)
		prev = end
	}
	if prev != uint64(n-1) {
		return nil, fmt.Errorf("%w: %d children for %d nodes", core.ErrCorrupt, prev, n)
	}
	return t, nil
}

// Values returns the breadth-first node values.
func (t *Tree[T]) Values() []T { return t.values }

// ChildrenOffsetEnds returns the cumulative child counts.
func (t *Tree[T]) ChildrenOffsetEnds() []uint64 { return t.offsetEnds }

// Variant returns core.VariantCompact.
func (t *Tree[T]) Variant() core.Variant { return core.VariantCompact }

// MaxChildren returns the largest child count of any node.
func (t *Tree[T]) MaxChildren() uint64 { return t.maxChildren }

// NodeCount returns the number of nodes.
func (t *Tree[T]) NodeCount() int { return len(t.values) }

// ChildrenCount returns the number of children of node i.
func (t *Tree[T]) ChildrenCount(i int) (int, error) {
	if i < 0 || i >= len(t.offsetEnds) {
		return 0, core.NewOutOfRange("node", i, len(t.offsetEnds))
	}
	start := uint64(0)
	if i > 0 {
		start = t.offsetEnds[i-1]
	}
	return conv.Uint64ToInt(t.offsetEnds[i] - start)
}

// ChildrenRange returns the half-open value index range of node i's children.
func (t *Tree[T]) ChildrenRange(i int) (core.Span, error) {
	count, err := t.ChildrenCount(i)
	if err != nil {
		return core.Span{}, err
	}
	last, err := conv.Uint64ToInt(t.offsetEnds[i])
	if err != nil {
		return core.Span{}, err
	}
	end := last + 1
	return core.Span{Start: end - count, End: end}, nil
}

// Decode rebuilds the pointer-based tree.
func (t *Tree[T]) Decode() *tree.Node[T] {
	nodes := make([]*tree.Node[T], len(t.values))
	nodes[0] = tree.New(t.values[0])
	for i := range nodes {
		span, _ := t.ChildrenRange(i)
		for j := span.Start; j < span.End; j++ {
			nodes[j] = nodes[i].Add(t.values[j])
		}
	}
	return nodes[0]
}
