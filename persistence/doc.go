// Package persistence provides a framed binary format for flat tree encodings.
//
// Every blob starts with a fixed 32-byte little-endian header:
//
//	Magic       uint32  "FLT0"
//	Version     uint16
//	Variant     uint8   fixed-slot | bitmap | compact
//	Compression uint8   none | lz4 | zstd
//	Encoding    uint8   binary | codec
//	Reserved    [3]byte
//	ElementSize uint32  fixed element size, 0 for codec payloads
//	BodyLen     uint64  stored body length
//	RawLen      uint32  uncompressed body length
//	Checksum    uint32  CRC32C of the uncompressed body
//
// followed by the codec name (codec payloads only) and the body.
//
// Elements with a fixed size (numerics and structs of numerics) are written
// with encoding/binary. Everything else goes through a codec.Codec whose
// name is recorded, so blobs stay readable when the default codec changes.
package persistence
