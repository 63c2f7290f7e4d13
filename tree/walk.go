package tree

// BreadthFirst visits every node of src level by level, left to right.
// depth is 0 for the root. Returning false from fn stops the walk.
func BreadthFirst[N any, T comparable](src Source[N, T], fn func(n N, depth int) bool) {
	type item struct {
		node  N
		depth int
	}
	queue := []item{{node: src.Root()}}
	for head := 0; head < len(queue); head++ {
		it := queue[head]
		if !fn(it.node, it.depth) {
			return
		}
		for _, child := range src.Children(it.node) {
			queue = append(queue, item{node: child, depth: it.depth + 1})
		}
		queue[head] = item{}
	}
}

// MaxChildren returns the largest child count of any node in src.
func MaxChildren[N any, T comparable](src Source[N, T]) int {
	m := 0
	BreadthFirst(src, func(n N, _ int) bool {
		m = max(m, src.ChildCount(n))
		return true
	})
	return m
}

// Values returns the node values of src in breadth-first order.
func Values[N any, T comparable](src Source[N, T]) []T {
	var values []T
	BreadthFirst(src, func(n N, _ int) bool {
		values = append(values, src.Value(n))
		return true
	})
	return values
}
