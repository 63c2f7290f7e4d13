// Package flattree stores rooted, ordered trees as flat arrays and answers
// child lookups by value path directly on the flat form.
//
// # Quick Start
//
//	root := tree.New[int64](0)
//	a := root.Add(1)
//	a.Add(3)
//	a.Add(4)
//	root.Add(2)
//
//	enc, _ := flattree.Encode(tree.FromNode(root), -1, element.Scalar[int64]{})
//	children, ok := enc.ChildrenByPath([]int64{0, 1}) // [3 4], true
//
// # Encodings
//
// Three flat layouts are available, selected with WithVariant:
//
//   - fixed-slot: every node reserves maxChildren slots padded with a sentinel.
//     Fast positional access, memory grows with the widest node.
//   - bitmap: one existence bit per slot plus densely packed values.
//     Suits trees with a few very wide nodes.
//   - compact: breadth-first values plus cumulative child offsets.
//     No padding and typed query errors.
//
// The default, auto, picks bitmap when the widest node has at least
// WithBitmapThreshold children (10 unless configured) and fixed-slot otherwise.
//
// # Persistence
//
// Save and Load write encodings to any blobstore.BlobStore in a framed,
// versioned, checksummed format with optional LZ4 or ZSTD compression:
//
//	store := blobstore.NewLocalStore("./data")
//	_ = flattree.Save(ctx, store, "catalog.flt", enc, flattree.WithCompression(persistence.CompressionZSTD))
//	enc, _ = flattree.Load(ctx, store, "catalog.flt", element.Scalar[int64]{})
//
// Remote stores live in blobstore/s3 and blobstore/minio; blobstore/leveldb
// keeps many small encodings in one embedded database.
//
// # Concurrency
//
// Encodings are immutable after construction and safe for concurrent
// queries. EncodeAll encodes independent trees in parallel.
package flattree
