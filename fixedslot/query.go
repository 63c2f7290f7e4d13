package fixedslot

// ChildrenByPath returns the values of the children of the node reached by
// path, matched from the root downward. Equal siblings resolve to the
// left-most one. A leaf yields an empty, non-nil slice.
//
// The second result is false for an empty path or when any path element has
// no matching node.
func (t *Tree[T]) ChildrenByPath(path []T) ([]T, bool) {
	if len(path) == 0 || path[0] != t.values[0] {
		return nil, false
	}

	m := t.maxChildren
	rank := 0
	for k := 1; k < len(path); k++ {
		if k >= len(t.levels) {
			return nil, false
		}
		span := t.levels[k]
		base := span.Start + rank*m

		slot := -1
		for j, v := range t.values[base : base+m] {
			if v != t.sentinel && v == path[k] {
				slot = rank*m + j
				break
			}
		}
		if slot < 0 {
			return nil, false
		}

		rank = 0
		for _, v := range t.values[span.Start : span.Start+slot] {
			if v != t.sentinel {
				rank++
			}
		}
	}

	children := make([]T, 0, m)
	if len(path) >= len(t.levels) {
		return children, true
	}
	base := t.levels[len(path)].Start + rank*m
	for _, v := range t.values[base : base+m] {
		if v != t.sentinel {
			children = append(children, v)
		}
	}
	return children, true
}

// ChildrenByPath is the function form of Tree.ChildrenByPath.
func ChildrenByPath[T comparable](t *Tree[T], path []T) ([]T, bool) {
	return t.ChildrenByPath(path)
}
