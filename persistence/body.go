package persistence

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hupe1980/flattree/codec"
	"github.com/hupe1980/flattree/core"
	"github.com/hupe1980/flattree/internal/conv"
)

// elementFormat decides how elements of T are stored.
type elementFormat[T any] struct {
	encoding ElementEncoding
	size     int
	codec    codec.Codec
}

func newElementFormat[T any](c codec.Codec) elementFormat[T] {
	var zero T
	if n := binary.Size(zero); n > 0 {
		return elementFormat[T]{encoding: EncodingBinary, size: n}
	}
	return elementFormat[T]{encoding: EncodingCodec, codec: c}
}

type bodyWriter[T any] struct {
	w      io.Writer
	format elementFormat[T]
}

func (bw *bodyWriter[T]) writeUint64(v uint64) error {
	return binary.Write(bw.w, binary.LittleEndian, v)
}

func (bw *bodyWriter[T]) writeBytes(b []byte) error {
	if err := bw.writeUint64(uint64(len(b))); err != nil {
		return err
	}
	_, err := bw.w.Write(b)
	return err
}

func (bw *bodyWriter[T]) writeElements(elems []T) error {
	if err := bw.writeUint64(uint64(len(elems))); err != nil {
		return err
	}
	if bw.format.encoding == EncodingBinary {
		return binary.Write(bw.w, binary.LittleEndian, elems)
	}
	data, err := bw.format.codec.Marshal(elems)
	if err != nil {
		return fmt.Errorf("codec %s: %w", bw.format.codec.Name(), err)
	}
	return bw.writeBytes(data)
}

func (bw *bodyWriter[T]) writeUint64s(vs []uint64) error {
	if err := bw.writeUint64(uint64(len(vs))); err != nil {
		return err
	}
	return binary.Write(bw.w, binary.LittleEndian, vs)
}

// writeBlob frames the body produced by fill.
func writeBlob[T any](w io.Writer, variant core.Variant, opts []Option, fill func(*bodyWriter[T]) error) error {
	o := applyOptions(opts)

	var raw bytes.Buffer
	cw := NewChecksumWriter(&raw)
	bw := &bodyWriter[T]{w: cw, format: newElementFormat[T](o.codec)}
	if err := fill(bw); err != nil {
		return err
	}
	rawLen, err := conv.IntToUint32(raw.Len())
	if err != nil {
		return fmt.Errorf("%w: body of %d bytes", core.ErrTooLarge, raw.Len())
	}
	elemSize, err := conv.IntToUint32(bw.format.size)
	if err != nil {
		return fmt.Errorf("element size: %w", err)
	}

	stored, used, err := compress(raw.Bytes(), o.compression)
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}

	info := &Info{Header: Header{
		Variant:     variant,
		Compression: used,
		Encoding:    bw.format.encoding,
		ElementSize: elemSize,
		BodyLen:     uint64(len(stored)),
		RawLen:      rawLen,
		Checksum:    cw.Sum(),
	}}
	if bw.format.encoding == EncodingCodec {
		info.CodecName = o.codec.Name()
	}

	if err := writeHeader(w, info); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := w.Write(stored); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	return nil
}

type bodyReader[T any] struct {
	r      *bytes.Reader
	format elementFormat[T]
}

// readBlob validates the frame and returns a reader over the verified body.
func readBlob[T any](r io.Reader, variant core.Variant, opts []Option) (*bodyReader[T], error) {
	o := applyOptions(opts)

	info, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	if info.Variant != variant {
		return nil, fmt.Errorf("%w: blob holds %s, want %s", ErrVariantMismatch, info.Variant, variant)
	}

	format := newElementFormat[T](nil)
	switch info.Encoding {
	case EncodingBinary:
		if format.encoding != EncodingBinary || uint32(format.size) != info.ElementSize {
			return nil, fmt.Errorf("%w: stored element size %d does not match %T", core.ErrCorrupt, info.ElementSize, *new(T))
		}
	case EncodingCodec:
		c, ok := codec.ByName(info.CodecName)
		if !ok && o.codec.Name() == info.CodecName {
			c, ok = o.codec, true
		}
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, info.CodecName)
		}
		format = elementFormat[T]{encoding: EncodingCodec, codec: c}
	default:
		return nil, fmt.Errorf("%w: element encoding %d", core.ErrCorrupt, info.Encoding)
	}

	stored, err := readBody(r, info.BodyLen)
	if err != nil {
		return nil, err
	}
	raw, err := decompress(stored, info.Compression, info.RawLen)
	if err != nil {
		return nil, fmt.Errorf("%w: decompress: %v", core.ErrCorrupt, err)
	}
	if err := VerifyChecksum(raw, info.Checksum); err != nil {
		return nil, err
	}

	return &bodyReader[T]{r: bytes.NewReader(raw), format: format}, nil
}

// readBody reads exactly n body bytes. Readers that know their remaining
// length are checked up front; others are read through a limit so the buffer
// only grows with data that actually arrives.
func readBody(r io.Reader, n uint64) ([]byte, error) {
	if lr, ok := r.(interface{ Len() int }); ok {
		if n > uint64(lr.Len()) {
			return nil, fmt.Errorf("%w: body of %d bytes announced, %d left", core.ErrCorrupt, n, lr.Len())
		}
		stored := make([]byte, n)
		if _, err := io.ReadFull(r, stored); err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
		return stored, nil
	}

	stored, err := io.ReadAll(io.LimitReader(r, int64(n)))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if uint64(len(stored)) != n {
		return nil, fmt.Errorf("%w: body truncated at %d of %d bytes", core.ErrCorrupt, len(stored), n)
	}
	return stored, nil
}

func (br *bodyReader[T]) readUint64() (uint64, error) {
	var v uint64
	if err := binary.Read(br.r, binary.LittleEndian, &v); err != nil {
		return 0, fmt.Errorf("%w: %v", core.ErrCorrupt, err)
	}
	return v, nil
}

func (br *bodyReader[T]) readBytes() ([]byte, error) {
	n, err := br.readUint64()
	if err != nil {
		return nil, err
	}
	if n > uint64(br.r.Len()) {
		return nil, fmt.Errorf("%w: %d bytes announced, %d left", core.ErrCorrupt, n, br.r.Len())
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(br.r, b); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrCorrupt, err)
	}
	return b, nil
}

func (br *bodyReader[T]) readElements() ([]T, error) {
	count, err := br.readUint64()
	if err != nil {
		return nil, err
	}

	if br.format.encoding == EncodingBinary {
		if count > uint64(br.r.Len()/br.format.size) {
			return nil, fmt.Errorf("%w: %d elements announced, %d bytes left", core.ErrCorrupt, count, br.r.Len())
		}
		elems := make([]T, count)
		if err := binary.Read(br.r, binary.LittleEndian, elems); err != nil {
			return nil, fmt.Errorf("%w: %v", core.ErrCorrupt, err)
		}
		return elems, nil
	}

	data, err := br.readBytes()
	if err != nil {
		return nil, err
	}
	elems := make([]T, 0, min(count, uint64(len(data))))
	if err := br.format.codec.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("%w: codec %s: %v", core.ErrCorrupt, br.format.codec.Name(), err)
	}
	if uint64(len(elems)) != count {
		return nil, fmt.Errorf("%w: %d elements announced, %d decoded", core.ErrCorrupt, count, len(elems))
	}
	return elems, nil
}

func (br *bodyReader[T]) readUint64s() ([]uint64, error) {
	count, err := br.readUint64()
	if err != nil {
		return nil, err
	}
	if count > uint64(br.r.Len()/8) {
		return nil, fmt.Errorf("%w: %d offsets announced, %d bytes left", core.ErrCorrupt, count, br.r.Len())
	}
	vs := make([]uint64, count)
	if err := binary.Read(br.r, binary.LittleEndian, vs); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrCorrupt, err)
	}
	return vs, nil
}

func (br *bodyReader[T]) finish() error {
	if br.r.Len() != 0 {
		return fmt.Errorf("%w: %d trailing bytes", core.ErrCorrupt, br.r.Len())
	}
	return nil
}
