package fixedslot

import (
	"fmt"

	"github.com/hupe1980/flattree/core"
	"github.com/hupe1980/flattree/element"
	"github.com/hupe1980/flattree/internal/conv"
	"github.com/hupe1980/flattree/tree"
)

// Encode flattens src into a fixed-slot Tree.
//
// sentinel marks empty slots and must not equal any node value. kind encodes
// the trailing max-children marker as T.
func Encode[N any, T comparable](src tree.Source[N, T], sentinel T, kind element.Kind[T]) (*Tree[T], error) {
	maxChildren := tree.MaxChildren(src)

	root := src.Root()
	values := []T{src.Value(root)}
	if values[0] == sentinel {
		return nil, core.NewConfigError("sentinel", fmt.Errorf("%w: root value %v", core.ErrSentinelCollision, sentinel))
	}

	var collision error
	tree.BreadthFirst(src, func(n N, depth int) bool {
		children := src.Children(n)
		for _, child := range children {
			v := src.Value(child)
			if v == sentinel {
				collision = fmt.Errorf("%w: value %v at depth %d", core.ErrSentinelCollision, v, depth+1)
				return false
			}
			values = append(values, v)
		}
		for i := len(children); i < maxChildren; i++ {
			values = append(values, sentinel)
		}
		return true
	})
	if collision != nil {
		return nil, core.NewConfigError("sentinel", collision)
	}

	marker, err := kind.Marker(uint64(maxChildren))
	if err != nil {
		return nil, core.NewConfigError("max children", err)
	}
	values = append(values, marker)

	return newTree(values, sentinel, maxChildren)
}

// FromValues rebuilds a Tree from a flat array produced by Encode.
//
// The trailing marker is decoded with kind and the level layout is validated
// against it. Violations are reported as core.ErrCorrupt.
func FromValues[T comparable](values []T, sentinel T, kind element.Kind[T]) (*Tree[T], error) {
	if len(values) < 2 {
		return nil, fmt.Errorf("%w: %d values, need at least 2", core.ErrCorrupt, len(values))
	}
	count, err := kind.Count(values[len(values)-1])
	if err != nil {
		return nil, fmt.Errorf("%w: marker: %v", core.ErrCorrupt, err)
	}
	if count > uint64(len(values)) {
		return nil, fmt.Errorf("%w: marker %d exceeds array length %d", core.ErrCorrupt, count, len(values))
	}
	if values[0] == sentinel {
		return nil, fmt.Errorf("%w: root holds the sentinel", core.ErrCorrupt)
	}
	maxChildren, err := conv.Uint64ToInt(count)
	if err != nil {
		return nil, fmt.Errorf("%w: marker: %v", core.ErrCorrupt, err)
	}
	return newTree(values, sentinel, maxChildren)
}

func newTree[T comparable](values []T, sentinel T, maxChildren int) (*Tree[T], error) {
	spans, err := Partition(values, sentinel, maxChildren)
	if err != nil {
		return nil, err
	}

	levels := make([]core.Span, 0, len(spans)+1)
	levels = append(levels, core.Span{Start: 0, End: 1})
	levels = append(levels, spans...)

	return &Tree[T]{
		values:      values,
		sentinel:    sentinel,
		maxChildren: maxChildren,
		levels:      levels,
	}, nil
}
