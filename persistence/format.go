package persistence

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/flattree/core"
)

const (
	// MagicNumber identifies flattree blobs (ASCII: "FLT0").
	MagicNumber = 0x464c5430
	// Version is the current format version.
	Version = 1

	// HeaderSize is the encoded size of Header.
	HeaderSize = 32

	maxBodyLen = 1 << 33
)

var (
	ErrInvalidMagic    = errors.New("invalid magic number")
	ErrInvalidVersion  = errors.New("unsupported version")
	ErrVariantMismatch = errors.New("variant mismatch")
	ErrUnknownCodec    = errors.New("unknown codec")
)

// ElementEncoding tells how element payloads are stored.
type ElementEncoding uint8

const (
	// EncodingBinary stores fixed-size elements with encoding/binary.
	EncodingBinary ElementEncoding = 0
	// EncodingCodec stores elements as a codec payload.
	EncodingCodec ElementEncoding = 1
)

func (e ElementEncoding) String() string {
	switch e {
	case EncodingBinary:
		return "binary"
	case EncodingCodec:
		return "codec"
	default:
		return fmt.Sprintf("encoding(%d)", uint8(e))
	}
}

// Header is the fixed-size header at the start of every blob.
type Header struct {
	Magic       uint32
	Version     uint16
	Variant     core.Variant
	Compression Compression
	Encoding    ElementEncoding
	Reserved    [3]byte
	ElementSize uint32
	BodyLen     uint64
	RawLen      uint32
	Checksum    uint32
}

// Info describes a stored blob without decoding its body.
type Info struct {
	Header
	CodecName string
}

// ReadHeader reads and validates the header and codec name of a blob.
func ReadHeader(r io.Reader) (*Info, error) {
	var info Info
	if err := binary.Read(r, binary.LittleEndian, &info.Header); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if info.Magic != MagicNumber {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, info.Magic)
	}
	if info.Version != Version {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidVersion, info.Version)
	}
	if info.BodyLen > maxBodyLen {
		return nil, fmt.Errorf("%w: body length %d", core.ErrCorrupt, info.BodyLen)
	}
	if info.Encoding == EncodingCodec {
		var n [1]byte
		if _, err := io.ReadFull(r, n[:]); err != nil {
			return nil, fmt.Errorf("read codec name: %w", err)
		}
		name := make([]byte, n[0])
		if _, err := io.ReadFull(r, name); err != nil {
			return nil, fmt.Errorf("read codec name: %w", err)
		}
		info.CodecName = string(name)
	}
	return &info, nil
}

func writeHeader(w io.Writer, info *Info) error {
	info.Magic = MagicNumber
	info.Version = Version
	if err := binary.Write(w, binary.LittleEndian, &info.Header); err != nil {
		return err
	}
	if info.Encoding != EncodingCodec {
		return nil
	}
	if len(info.CodecName) > 255 {
		return fmt.Errorf("codec name %q too long", info.CodecName)
	}
	if _, err := w.Write([]byte{byte(len(info.CodecName))}); err != nil {
		return err
	}
	_, err := io.WriteString(w, info.CodecName)
	return err
}
