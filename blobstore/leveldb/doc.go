// Package leveldb provides a BlobStore backed by an embedded LevelDB database.
//
// It suits many small encodings kept on a single host, where one file per
// blob would waste inodes. An empty path opens an in-memory database.
//
//	store, err := leveldb.Open("/var/lib/flattree")
//	defer store.Close()
package leveldb
