package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFS(t *testing.T) {
	tmp := t.TempDir()
	lfs := LocalFS{}

	dir := filepath.Join(tmp, "subdir")
	require.NoError(t, lfs.MkdirAll(dir, 0o755))

	f, err := lfs.CreateTemp(dir, ".tmp-*")
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(f.Name()))

	_, err = f.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, f.Sync())
	require.NoError(t, f.Close())

	target := filepath.Join(dir, "blob")
	require.NoError(t, lfs.Rename(f.Name(), target))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, lfs.Remove(target))
	_, err = os.Stat(target)
	assert.True(t, os.IsNotExist(err))
}

func TestFaultyFS(t *testing.T) {
	tmp := t.TempDir()

	t.Run("WriteLimit", func(t *testing.T) {
		ffs := NewFaultyFS(nil)
		ffs.AddRule("limited", Fault{FailAfterBytes: 4})

		dir := filepath.Join(tmp, "limited")
		require.NoError(t, ffs.MkdirAll(dir, 0o755))

		f, err := ffs.CreateTemp(dir, "x-*")
		require.NoError(t, err)
		defer f.Close()

		_, err = f.Write([]byte("abc"))
		require.NoError(t, err)
		_, err = f.Write([]byte("de"))
		assert.ErrorIs(t, err, ErrInjected)
	})

	t.Run("SyncAndClose", func(t *testing.T) {
		ffs := NewFaultyFS(nil)
		ffs.AddRule("sync", Fault{FailAfterBytes: -1, FailOnSync: true, FailOnClose: true})

		dir := filepath.Join(tmp, "sync")
		require.NoError(t, ffs.MkdirAll(dir, 0o755))

		f, err := ffs.CreateTemp(dir, "x-*")
		require.NoError(t, err)
		assert.ErrorIs(t, f.Sync(), ErrInjected)
		assert.ErrorIs(t, f.Close(), ErrInjected)
	})

	t.Run("Rename", func(t *testing.T) {
		ffs := NewFaultyFS(nil)
		ffs.AddRule("target", Fault{FailAfterBytes: -1, FailOnRename: true})

		f, err := ffs.CreateTemp(tmp, "x-*")
		require.NoError(t, err)
		require.NoError(t, f.Close())

		assert.ErrorIs(t, ffs.Rename(f.Name(), filepath.Join(tmp, "target")), ErrInjected)
		require.NoError(t, ffs.Rename(f.Name(), filepath.Join(tmp, "other")))
	})
}
