// Package blobstore provides storage for persisted tree encodings.
//
// BlobStore reads and writes whole immutable blobs by name. Names are
// slash-separated relative paths such as "catalog/v1.flt".
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-memory, for tests
//   - LocalStore: local filesystem, reads through mmap
//   - CachingStore: read-through LRU cache in front of any store
//   - s3.Store: Amazon S3 with multipart uploads and CRC32C checksums
//   - minio.Store: MinIO and other S3-compatible services
//   - leveldb.Store: an embedded LevelDB database
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Get(ctx, name) ([]byte, error)
//	    Put(ctx, name, data) error
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
package blobstore
