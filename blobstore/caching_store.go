package blobstore

import (
	"context"
	"sync"

	"github.com/hupe1980/flattree/internal/cache"
)

// CachingStore wraps a BlobStore and caches whole blobs in memory.
// It suits remote stores, where encodings are read far more often than written.
type CachingStore struct {
	inner BlobStore
	cache *cache.LRU[string]

	// gen counts writes; a read-through fill is dropped if a write happened
	// while it was in flight.
	mu  sync.Mutex
	gen uint64
}

// CacheStats reports cache effectiveness and usage.
type CacheStats struct {
	Hits    int64
	Misses  int64
	Entries int
	Bytes   int64
}

// NewCachingStore creates a new CachingStore holding up to capacity bytes.
func NewCachingStore(inner BlobStore, capacity int64) *CachingStore {
	return &CachingStore{
		inner: inner,
		cache: cache.NewLRU[string](capacity),
	}
}

// Get returns a cached copy of the blob, reading through on a miss.
func (s *CachingStore) Get(ctx context.Context, name string) ([]byte, error) {
	if data, ok := s.cache.Get(name); ok {
		return clone(data), nil
	}

	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()

	data, err := s.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.gen == gen {
		s.cache.Set(name, clone(data))
	}
	s.mu.Unlock()
	return data, nil
}

// Put invalidates the cached blob and writes through.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	s.invalidate(name)
	defer s.invalidate(name)
	return s.inner.Put(ctx, name, data)
}

// Delete invalidates the cached blob and deletes it from the inner store.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	s.invalidate(name)
	defer s.invalidate(name)
	return s.inner.Delete(ctx, name)
}

// List is passed through to the inner store.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Stats returns cache hits, misses and current usage.
func (s *CachingStore) Stats() CacheStats {
	hits, misses := s.cache.Stats()
	return CacheStats{
		Hits:    hits,
		Misses:  misses,
		Entries: s.cache.Len(),
		Bytes:   s.cache.Size(),
	}
}

func (s *CachingStore) invalidate(name string) {
	s.mu.Lock()
	s.gen++
	s.cache.Remove(name)
	s.mu.Unlock()
}

func clone(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
