package flattree

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/flattree/bitmap"
	"github.com/hupe1980/flattree/compact"
	"github.com/hupe1980/flattree/core"
	"github.com/hupe1980/flattree/element"
	"github.com/hupe1980/flattree/fixedslot"
	"github.com/hupe1980/flattree/tree"
)

// Encoding is an immutable flat tree.
//
// *fixedslot.Tree[T], *bitmap.Tree[T] and *compact.Tree[T] implement it.
type Encoding[T comparable] interface {
	// Variant reports the flat layout.
	Variant() core.Variant
	// MaxChildren returns the largest child count of any node.
	MaxChildren() uint64
	// NodeCount returns the number of real nodes.
	NodeCount() int
	// ChildrenByPath returns the children of the node reached by path,
	// starting at the root. ok is false when no node matches.
	ChildrenByPath(path []T) ([]T, bool)
	// Decode rebuilds the pointer tree.
	Decode() *tree.Node[T]
}

var (
	_ Encoding[int] = (*fixedslot.Tree[int])(nil)
	_ Encoding[int] = (*bitmap.Tree[int])(nil)
	_ Encoding[int] = (*compact.Tree[int])(nil)
)

// Encode flattens src.
//
// sentinel and kind are only used by the fixed-slot layout; sentinel must not
// equal any node value. The layout is chosen with WithVariant.
func Encode[N any, T comparable](src tree.Source[N, T], sentinel T, kind element.Kind[T], opts ...Option) (Encoding[T], error) {
	return encode(context.Background(), src, sentinel, kind, applyOptions(opts))
}

// EncodeNode is Encode for an in-memory tree.
func EncodeNode[T comparable](root *tree.Node[T], sentinel T, kind element.Kind[T], opts ...Option) (Encoding[T], error) {
	return Encode(tree.FromNode(root), sentinel, kind, opts...)
}

// ChooseVariant returns the layout VariantAuto picks for a tree whose widest
// node has maxChildren children.
func ChooseVariant(maxChildren, bitmapThreshold uint64) core.Variant {
	if maxChildren >= bitmapThreshold {
		return core.VariantBitmap
	}
	return core.VariantFixedSlot
}

func encode[N any, T comparable](ctx context.Context, src tree.Source[N, T], sentinel T, kind element.Kind[T], o options) (Encoding[T], error) {
	start := time.Now()

	v := o.variant
	if v == core.VariantAuto {
		v = ChooseVariant(uint64(tree.MaxChildren(src)), o.bitmapThreshold)
	}

	enc, err := encodeAs(src, sentinel, kind, v)
	elapsed := time.Since(start)

	var (
		nodes       int
		maxChildren uint64
	)
	if err == nil {
		nodes = enc.NodeCount()
		maxChildren = enc.MaxChildren()
	}
	o.metricsCollector.RecordEncode(v, nodes, elapsed, err)
	o.logger.LogEncode(ctx, v, nodes, maxChildren, elapsed, err)

	return enc, err
}

func encodeAs[N any, T comparable](src tree.Source[N, T], sentinel T, kind element.Kind[T], v core.Variant) (Encoding[T], error) {
	switch v {
	case core.VariantFixedSlot:
		t, err := fixedslot.Encode(src, sentinel, kind)
		if err != nil {
			return nil, err
		}
		return t, nil
	case core.VariantBitmap:
		t, err := bitmap.Encode(src)
		if err != nil {
			return nil, err
		}
		return t, nil
	case core.VariantCompact:
		return compact.Encode(src), nil
	default:
		return nil, core.NewConfigError("variant", fmt.Errorf("unsupported variant %s", v))
	}
}

// Query runs enc.ChildrenByPath and reports it to the configured
// logger and metrics collector.
func Query[T comparable](ctx context.Context, enc Encoding[T], path []T, opts ...Option) ([]T, bool) {
	o := applyOptions(opts)

	start := time.Now()
	children, ok := enc.ChildrenByPath(path)
	o.metricsCollector.RecordQuery(ok, time.Since(start))
	o.logger.LogQuery(ctx, len(path), len(children), ok)

	return children, ok
}

// Decode runs enc.Decode and reports it to the configured metrics collector.
func Decode[T comparable](enc Encoding[T], opts ...Option) *tree.Node[T] {
	o := applyOptions(opts)

	start := time.Now()
	root := enc.Decode()
	o.metricsCollector.RecordDecode(enc.Variant(), time.Since(start))

	return root
}
