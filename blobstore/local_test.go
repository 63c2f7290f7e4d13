package blobstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/flattree/internal/fs"
)

func TestLocalBlobStore_Lifecycle(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)

	ctx := context.Background()

	blobName := "trees/data-001.flt"
	data := []byte("hello world, this is a test blob for flattree")

	require.NoError(t, store.Put(ctx, blobName, data))

	// Verify file exists on disk
	_, err := os.Stat(filepath.Join(tmpDir, "trees", "data-001.flt"))
	require.NoError(t, err)

	got, err := store.Get(ctx, blobName)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// Overwrite
	require.NoError(t, store.Put(ctx, blobName, []byte("v2")))
	got, err = store.Get(ctx, blobName)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)

	// List
	require.NoError(t, store.Put(ctx, "trees/data-002.flt", nil))
	require.NoError(t, store.Put(ctx, "other.flt", []byte("x")))

	names, err := store.List(ctx, "trees/")
	require.NoError(t, err)
	assert.Equal(t, []string{"trees/data-001.flt", "trees/data-002.flt"}, names)

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"other.flt", "trees/data-001.flt", "trees/data-002.flt"}, all)

	// Empty blob
	empty, err := store.Get(ctx, "trees/data-002.flt")
	require.NoError(t, err)
	assert.Empty(t, empty)

	// Delete
	require.NoError(t, store.Delete(ctx, blobName))
	_, err = store.Get(ctx, blobName)
	assert.True(t, errors.Is(err, ErrNotFound))

	// Deleting again is a no-op
	require.NoError(t, store.Delete(ctx, blobName))
}

func TestLocalBlobStore_ListMissingRoot(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "missing"))

	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLocalBlobStore_InvalidName(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	for _, name := range []string{"", "/abs", "../escape", "a/../../b", "a//b"} {
		err := store.Put(ctx, name, []byte("x"))
		assert.ErrorIs(t, err, ErrInvalidName, name)
	}
}

func TestLocalBlobStore_CanceledContext(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Put(ctx, "a", []byte("x")), context.Canceled)
	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocalBlobStore_FailedWriteKeepsPreviousVersion(t *testing.T) {
	tmpDir := t.TempDir()
	ctx := context.Background()

	ffs := fs.NewFaultyFS(nil)
	store := newLocalStoreFS(tmpDir, ffs)

	require.NoError(t, store.Put(ctx, "faulty/tree.flt", []byte("v1")))

	for _, fault := range []fs.Fault{
		{FailAfterBytes: 1},
		{FailAfterBytes: -1, FailOnSync: true},
		{FailAfterBytes: -1, FailOnClose: true},
		{FailAfterBytes: -1, FailOnRename: true},
	} {
		ffs.AddRule("faulty", fault)

		err := store.Put(ctx, "faulty/tree.flt", []byte("v2-longer"))
		assert.ErrorIs(t, err, fs.ErrInjected)

		got, err := store.Get(ctx, "faulty/tree.flt")
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), got)

		// No temp files are left behind
		entries, err := os.ReadDir(filepath.Join(tmpDir, "faulty"))
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	}
}
