package flattree

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/flattree/bitmap"
	"github.com/hupe1980/flattree/blobstore"
	"github.com/hupe1980/flattree/compact"
	"github.com/hupe1980/flattree/core"
	"github.com/hupe1980/flattree/element"
	"github.com/hupe1980/flattree/fixedslot"
	"github.com/hupe1980/flattree/persistence"
)

// BlobInfo describes a stored encoding without decoding its body.
type BlobInfo struct {
	Name string
	Size int
	*persistence.Info
}

// Marshal serializes enc in the persistence format.
func Marshal[T comparable](enc Encoding[T], opts ...Option) ([]byte, error) {
	return marshal(enc, applyOptions(opts))
}

func marshal[T comparable](enc Encoding[T], o options) ([]byte, error) {
	po := o.persistenceOptions()

	var (
		buf bytes.Buffer
		err error
	)
	switch t := enc.(type) {
	case *fixedslot.Tree[T]:
		err = persistence.WriteFixedSlot(&buf, t, po...)
	case *bitmap.Tree[T]:
		err = persistence.WriteBitmap(&buf, t, po...)
	case *compact.Tree[T]:
		err = persistence.WriteCompact(&buf, t, po...)
	default:
		return nil, core.NewConfigError("encoding", fmt.Errorf("unsupported encoding type %T", enc))
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses data written by Marshal. kind is needed for fixed-slot blobs.
func Unmarshal[T comparable](data []byte, kind element.Kind[T], opts ...Option) (Encoding[T], error) {
	return unmarshal(data, kind, applyOptions(opts))
}

func unmarshal[T comparable](data []byte, kind element.Kind[T], o options) (Encoding[T], error) {
	info, err := persistence.ReadHeader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	po := o.persistenceOptions()
	r := bytes.NewReader(data)

	switch info.Variant {
	case core.VariantFixedSlot:
		t, err := persistence.ReadFixedSlot(r, kind, po...)
		if err != nil {
			return nil, err
		}
		return t, nil
	case core.VariantBitmap:
		t, err := persistence.ReadBitmap[T](r, po...)
		if err != nil {
			return nil, err
		}
		return t, nil
	case core.VariantCompact:
		t, err := persistence.ReadCompact[T](r, po...)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("%w: stored variant %s", core.ErrCorrupt, info.Variant)
	}
}

// Save writes enc to store under name.
func Save[T comparable](ctx context.Context, store blobstore.BlobStore, name string, enc Encoding[T], opts ...Option) error {
	o := applyOptions(opts)
	start := time.Now()

	data, err := marshal(enc, o)
	if err == nil {
		err = store.Put(ctx, name, data)
	}
	if err != nil {
		err = fmt.Errorf("save %s: %w", name, err)
	}

	o.metricsCollector.RecordSave(len(data), time.Since(start), err)
	o.logger.LogSave(ctx, name, len(data), err)
	return err
}

// Load reads the encoding stored under name.
func Load[T comparable](ctx context.Context, store blobstore.BlobStore, name string, kind element.Kind[T], opts ...Option) (Encoding[T], error) {
	o := applyOptions(opts)
	start := time.Now()

	var enc Encoding[T]
	data, err := store.Get(ctx, name)
	if err == nil {
		enc, err = unmarshal(data, kind, o)
	}
	if err != nil {
		err = fmt.Errorf("load %s: %w", name, err)
	}

	o.metricsCollector.RecordLoad(time.Since(start), err)
	var v core.Variant
	if enc != nil {
		v = enc.Variant()
	}
	o.logger.LogLoad(ctx, name, v, err)

	if err != nil {
		return nil, err
	}
	return enc, nil
}

// Stat reads the header of the encoding stored under name.
func Stat(ctx context.Context, store blobstore.BlobStore, name string) (*BlobInfo, error) {
	data, err := store.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", name, err)
	}
	info, err := persistence.ReadHeader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", name, err)
	}
	return &BlobInfo{Name: name, Size: len(data), Info: info}, nil
}
