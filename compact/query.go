package compact

import (
	"cmp"
	"slices"

	"github.com/hupe1980/flattree/core"
)

// ChildrenForPath returns the children of the node reached by path, scanning
// siblings left to right.
//
// Errors: core.ErrEmptyPath, core.ErrPathDoesNotMatch when an element has no
// matching node, core.ErrPathTooLong when the path continues below a leaf.
func (t *Tree[T]) ChildrenForPath(path []T) ([]T, error) {
	return childrenForPath(t, path, slices.Index[[]T, T])
}

// ChildrenForSortedPath is ChildrenForPath using binary search. Siblings must
// be sorted ascending.
func ChildrenForSortedPath[T cmp.Ordered](t *Tree[T], path []T) ([]T, error) {
	return childrenForPath(t, path, func(siblings []T, v T) int {
		if i, ok := slices.BinarySearch(siblings, v); ok {
			return i
		}
		return -1
	})
}

// ChildrenByPath adapts ChildrenForPath to the (children, found) form.
func (t *Tree[T]) ChildrenByPath(path []T) ([]T, bool) {
	children, err := t.ChildrenForPath(path)
	if err != nil {
		return nil, false
	}
	return children, true
}

func childrenForPath[T comparable](t *Tree[T], path []T, find func([]T, T) int) ([]T, error) {
	if len(path) == 0 {
		return nil, core.ErrEmptyPath
	}

	candidates := core.Span{Start: 0, End: 1}
	leaf := false
	for _, v := range path {
		if leaf {
			return nil, core.ErrPathTooLong
		}
		j := find(t.values[candidates.Start:candidates.End], v)
		if j < 0 {
			return nil, core.ErrPathDoesNotMatch
		}
		span, err := t.ChildrenRange(candidates.Start + j)
		if err != nil {
			return nil, err
		}
		candidates = span
		leaf = span.Len() == 0
	}

	children := make([]T, candidates.Len())
	copy(children, t.values[candidates.Start:candidates.End])
	return children, nil
}
