// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("trees/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	err = flattree.Save(ctx, store, "catalog.flt", enc)
//
// # Features
//
//   - CRC32C integrity checks on every upload
//   - Multipart uploads for large encodings
//   - Automatic pagination for listing
//   - Optional client-side request rate limiting
//   - Configurable prefix for multi-tenant isolation
package s3
