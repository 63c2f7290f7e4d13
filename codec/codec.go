// Package codec centralizes document and element payload encoding.
//
// Persisted encodings record the codec name, so changing the default codec
// never breaks existing blobs: they are decoded with the codec they name.
package codec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/flattree/tree"
)

// ErrNullChild is returned for tree documents holding a null child.
var ErrNullChild = errors.New("null child")

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// This is used by the persistence format, which stores the codec name of
// non-fixed-size element payloads in its header.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}

// MarshalTree encodes a tree document as nested {"value", "children"} objects.
func MarshalTree[T comparable](c Codec, root *tree.Node[T]) ([]byte, error) {
	if c == nil {
		c = Default
	}
	return c.Marshal(root)
}

// UnmarshalTree decodes a tree document written by MarshalTree.
func UnmarshalTree[T comparable](c Codec, data []byte) (*tree.Node[T], error) {
	if c == nil {
		c = Default
	}
	var root tree.Node[T]
	if err := c.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("codec %s: decode tree: %w", c.Name(), err)
	}

	stack := []*tree.Node[T]{&root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i, child := range n.Children {
			if child == nil {
				return nil, fmt.Errorf("codec %s: decode tree: %w at index %d below %v", c.Name(), ErrNullChild, i, n.Value)
			}
			stack = append(stack, child)
		}
	}
	return &root, nil
}
