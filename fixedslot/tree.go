package fixedslot

import (
	"github.com/hupe1980/flattree/core"
	"github.com/hupe1980/flattree/tree"
)

// Tree is an immutable fixed-slot encoding. Levels are computed once at
// construction. Slices returned by accessors alias internal storage and must
// not be modified.
type Tree[T comparable] struct {
	values      []T
	sentinel    T
	maxChildren int
	levels      []core.Span
}

// Values returns the flat array including the trailing marker.
func (t *Tree[T]) Values() []T { return t.values }

// Levels returns the level spans, starting with the root span [0, 1).
// The last span of a non-trivial tree holds only sentinel padding.
func (t *Tree[T]) Levels() []core.Span { return t.levels }

// MarkerForEmpty returns the sentinel used for empty slots.
func (t *Tree[T]) MarkerForEmpty() T { return t.sentinel }

// Variant returns core.VariantFixedSlot.
func (t *Tree[T]) Variant() core.Variant { return core.VariantFixedSlot }

// MaxChildren returns the number of slots reserved per node.
func (t *Tree[T]) MaxChildren() uint64 { return uint64(t.maxChildren) }

// Len returns the length of the flat array.
func (t *Tree[T]) Len() int { return len(t.values) }

// Root returns the root value.
func (t *Tree[T]) Root() T { return t.values[0] }

// NodeCount returns the number of real nodes.
func (t *Tree[T]) NodeCount() int {
	if t.maxChildren == 0 {
		return 1
	}
	return (len(t.values) - 2) / t.maxChildren
}

// Level returns the entries of level i.
func (t *Tree[T]) Level(i int) ([]T, error) {
	if i < 0 || i >= len(t.levels) {
		return nil, core.NewOutOfRange("level", i, len(t.levels))
	}
	span := t.levels[i]
	return t.values[span.Start:span.End], nil
}

// Block returns the child slots of the node-th real node of level-1.
func (t *Tree[T]) Block(level, node int) ([]T, error) {
	if level < 1 || level >= len(t.levels) {
		return nil, core.NewOutOfRange("level", level, len(t.levels))
	}
	span := t.levels[level]
	parents := span.Len() / t.maxChildren
	if node < 0 || node >= parents {
		return nil, core.NewOutOfRange("node", node, parents)
	}
	start := span.Start + node*t.maxChildren
	return t.values[start : start+t.maxChildren], nil
}

// Decode rebuilds the pointer-based tree.
func (t *Tree[T]) Decode() *tree.Node[T] {
	root := tree.New(t.values[0])
	parents := []*tree.Node[T]{root}

	for _, span := range t.levels[1:] {
		next := make([]*tree.Node[T], 0, len(parents)*t.maxChildren)
		for i, v := range t.values[span.Start:span.End] {
			if v == t.sentinel {
				continue
			}
			next = append(next, parents[i/t.maxChildren].Add(v))
		}
		parents = next
	}

	return root
}
