// Package hash provides hardware-accelerated hashing utilities for data integrity.
//
// # CRC32-Castagnoli (CRC32C)
//
// Every persisted flattree body and every object uploaded to S3 carries a
// CRC32-Castagnoli checksum. Go's crc32 package uses SSE4.2 on x86 and the
// CRC extension on ARM when available.
//
// # Usage
//
// For one-shot checksums:
//
//	checksum := hash.CRC32C(data)
//
// For streaming checksums:
//
//	h := hash.NewCRC32C()
//	h.Write(chunk1)
//	h.Write(chunk2)
//	checksum := h.Sum32()
package hash
