package persistence

import (
	"fmt"
	"io"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/flattree/bitmap"
	"github.com/hupe1980/flattree/compact"
	"github.com/hupe1980/flattree/core"
	"github.com/hupe1980/flattree/element"
	"github.com/hupe1980/flattree/fixedslot"
)

// WriteFixedSlot writes t as a fixed-slot blob.
//
// Body: sentinel element, flat array elements.
func WriteFixedSlot[T comparable](w io.Writer, t *fixedslot.Tree[T], opts ...Option) error {
	return writeBlob(w, core.VariantFixedSlot, opts, func(bw *bodyWriter[T]) error {
		if err := bw.writeElements([]T{t.MarkerForEmpty()}); err != nil {
			return err
		}
		return bw.writeElements(t.Values())
	})
}

// ReadFixedSlot reads a fixed-slot blob. kind decodes the trailing marker.
func ReadFixedSlot[T comparable](r io.Reader, kind element.Kind[T], opts ...Option) (*fixedslot.Tree[T], error) {
	br, err := readBlob[T](r, core.VariantFixedSlot, opts)
	if err != nil {
		return nil, err
	}
	sentinel, err := br.readElements()
	if err != nil {
		return nil, err
	}
	if len(sentinel) != 1 {
		return nil, fmt.Errorf("%w: %d sentinel elements", core.ErrCorrupt, len(sentinel))
	}
	values, err := br.readElements()
	if err != nil {
		return nil, err
	}
	if err := br.finish(); err != nil {
		return nil, err
	}
	return fixedslot.FromValues(values, sentinel[0], kind)
}

// WriteBitmap writes t as a bitmap blob.
//
// Body: max children, hierarchy bit length, serialized roaring bitmap,
// data elements.
func WriteBitmap[T comparable](w io.Writer, t *bitmap.Tree[T], opts ...Option) error {
	rb, err := t.Bitmap().ToBytes()
	if err != nil {
		return fmt.Errorf("serialize hierarchy: %w", err)
	}
	return writeBlob(w, core.VariantBitmap, opts, func(bw *bodyWriter[T]) error {
		if err := bw.writeUint64(t.MaxChildren()); err != nil {
			return err
		}
		if err := bw.writeUint64(t.HierarchyLen()); err != nil {
			return err
		}
		if err := bw.writeBytes(rb); err != nil {
			return err
		}
		return bw.writeElements(t.Data())
	})
}

// ReadBitmap reads a bitmap blob.
func ReadBitmap[T comparable](r io.Reader, opts ...Option) (*bitmap.Tree[T], error) {
	br, err := readBlob[T](r, core.VariantBitmap, opts)
	if err != nil {
		return nil, err
	}
	maxChildren, err := br.readUint64()
	if err != nil {
		return nil, err
	}
	length, err := br.readUint64()
	if err != nil {
		return nil, err
	}
	raw, err := br.readBytes()
	if err != nil {
		return nil, err
	}
	rb := roaring.New()
	if err := rb.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("%w: hierarchy: %v", core.ErrCorrupt, err)
	}
	data, err := br.readElements()
	if err != nil {
		return nil, err
	}
	if err := br.finish(); err != nil {
		return nil, err
	}
	return bitmap.FromBitmap(rb, length, data, maxChildren)
}

// WriteCompact writes t as a compact blob.
//
// Body: value elements, children offset ends.
func WriteCompact[T comparable](w io.Writer, t *compact.Tree[T], opts ...Option) error {
	return writeBlob(w, core.VariantCompact, opts, func(bw *bodyWriter[T]) error {
		if err := bw.writeElements(t.Values()); err != nil {
			return err
		}
		return bw.writeUint64s(t.ChildrenOffsetEnds())
	})
}

// ReadCompact reads a compact blob.
func ReadCompact[T comparable](r io.Reader, opts ...Option) (*compact.Tree[T], error) {
	br, err := readBlob[T](r, core.VariantCompact, opts)
	if err != nil {
		return nil, err
	}
	values, err := br.readElements()
	if err != nil {
		return nil, err
	}
	offsets, err := br.readUint64s()
	if err != nil {
		return nil, err
	}
	if err := br.finish(); err != nil {
		return nil, err
	}
	return compact.FromParts(values, offsets)
}
