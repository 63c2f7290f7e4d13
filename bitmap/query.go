package bitmap

// ChildrenByPath returns the values of the children of the node reached by
// path, matched from the root downward. Equal siblings resolve to the
// left-most one and unset bits never match. A leaf yields an empty, non-nil
// slice.
//
// The second result is false for an empty path or when any path element has
// no matching node.
func (t *Tree[T]) ChildrenByPath(path []T) ([]T, bool) {
	if len(path) == 0 || path[0] != t.data[0] {
		return nil, false
	}

	m := t.maxChildren
	rank := uint64(0) // position of the current node among the real nodes of its level
	for k := 1; k < len(path); k++ {
		if k >= len(t.levels) {
			return nil, false
		}
		start := t.levels[k-1]
		blockStart := start + rank*m
		idx := t.valuesPerLevel[k-1] + t.setBits(start, blockStart)

		found := false
		for p := blockStart; p < blockStart+m; p++ {
			if !t.hierarchy.Contains(uint32(p)) {
				continue
			}
			if t.data[idx] == path[k] {
				rank = idx - t.valuesPerLevel[k-1]
				found = true
				break
			}
			idx++
		}
		if !found {
			return nil, false
		}
	}

	children := make([]T, 0, m)
	if len(path) >= len(t.levels) {
		return children, true
	}
	start := t.levels[len(path)-1]
	blockStart := start + rank*m
	idx := t.valuesPerLevel[len(path)-1] + t.setBits(start, blockStart)
	for p := blockStart; p < blockStart+m; p++ {
		if t.hierarchy.Contains(uint32(p)) {
			children = append(children, t.data[idx])
			idx++
		}
	}
	return children, true
}

// ChildrenByPath is the function form of Tree.ChildrenByPath.
func ChildrenByPath[T comparable](t *Tree[T], path []T) ([]T, bool) {
	return t.ChildrenByPath(path)
}
