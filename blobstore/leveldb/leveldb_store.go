package leveldb

import (
	"context"
	"errors"

	"github.com/hupe1980/flattree/blobstore"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var _ blobstore.BlobStore = (*Store)(nil)

// Store implements blobstore.BlobStore on LevelDB.
type Store struct {
	db *leveldb.DB
}

// Open opens or creates a database at path.
// An empty path opens a volatile in-memory database.
func Open(path string) (*Store, error) {
	var (
		db  *leveldb.DB
		err error
	)
	if path == "" {
		db, err = leveldb.Open(storage.NewMemStorage(), nil)
	} else {
		db, err = leveldb.OpenFile(path, nil)
	}
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the blob.
func (s *Store) Get(ctx context.Context, name string) ([]byte, error) {
	if err := blobstore.ValidateName(name); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.db.Get([]byte(name), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, blobstore.ErrNotFound
	}
	return data, err
}

// Put writes the blob with a synced write.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	if err := blobstore.ValidateName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Put([]byte(name), data, &opt.WriteOptions{Sync: true})
}

// Delete removes the blob.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := blobstore.ValidateName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Delete([]byte(name), nil)
}

// List returns all blob names with the given prefix in key order.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	iter := s.db.NewIterator(util.BytesPrefix([]byte(prefix)), nil)
	defer iter.Release()

	var names []string
	for iter.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		names = append(names, string(iter.Key()))
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return names, nil
}
