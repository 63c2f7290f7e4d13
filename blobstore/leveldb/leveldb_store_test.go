package leveldb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hupe1980/flattree/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_InMemory(t *testing.T) {
	store, err := Open("")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "trees/b.flt", []byte("b")))
	require.NoError(t, store.Put(ctx, "trees/a.flt", []byte("a")))
	require.NoError(t, store.Put(ctx, "other.flt", []byte("o")))

	got, err := store.Get(ctx, "trees/a.flt")
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), got)

	names, err := store.List(ctx, "trees/")
	require.NoError(t, err)
	assert.Equal(t, []string{"trees/a.flt", "trees/b.flt"}, names)

	require.NoError(t, store.Delete(ctx, "trees/a.flt"))
	require.NoError(t, store.Delete(ctx, "trees/a.flt"))

	_, err = store.Get(ctx, "trees/a.flt")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	assert.ErrorIs(t, store.Put(ctx, "/abs", nil), blobstore.ErrInvalidName)
	_, err = store.Get(ctx, "../a.flt")
	assert.ErrorIs(t, err, blobstore.ErrInvalidName)
	assert.ErrorIs(t, store.Delete(ctx, ""), blobstore.ErrInvalidName)
}

func TestStore_Reopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")
	ctx := context.Background()

	store, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "tree.flt", []byte("persisted")))
	require.NoError(t, store.Close())

	store, err = Open(dir)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Get(ctx, "tree.flt")
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), got)
}
