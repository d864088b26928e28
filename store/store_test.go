package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intergen/store"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "i0.hif", store.FileName(0, "hif"))
	assert.Equal(t, "i42.txt", store.FileName(42, "txt"))
}

func TestDirSink(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "out")
	d, err := store.NewDir(root)
	require.NoError(t, err)

	path, err := d.Write("i0.hif", []byte("o\n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "i0.hif"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "o\n", string(data))

	_, err = d.Write("../escape", []byte("x"))
	assert.True(t, errors.Is(err, store.ErrInvalidName))
	_, err = d.Write("", []byte("x"))
	assert.True(t, errors.Is(err, store.ErrInvalidName))

	require.NoError(t, d.Close())
	_, err = d.Write("i1.hif", nil)
	assert.True(t, errors.Is(err, store.ErrClosed))
}

func TestNewDirRejectsEmptyRoot(t *testing.T) {
	_, err := store.NewDir("")
	assert.True(t, errors.Is(err, store.ErrInvalidName))
}

func TestBadgerSinkInMemory(t *testing.T) {
	b, err := store.OpenBadger(store.BadgerConfig{InMemory: true})
	require.NoError(t, err)

	for i, body := range []string{"a", "b", "c"} {
		loc, err := b.Write(store.FileName(i, "hif"), []byte(body))
		require.NoError(t, err)
		assert.Equal(t, "badger://memory/"+store.FileName(i, "hif"), loc)
	}

	names, err := b.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"i0.hif", "i1.hif", "i2.hif"}, names)

	got, err := b.Read("i1.hif")
	require.NoError(t, err)
	assert.Equal(t, "b", string(got))

	_, err = b.Read("i9.hif")
	assert.Error(t, err)

	require.NoError(t, b.Close())
	require.NoError(t, b.Close())
	_, err = b.Write("i3.hif", nil)
	assert.True(t, errors.Is(err, store.ErrClosed))
}

func TestBadgerSinkOnDisk(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")
	b, err := store.OpenBadger(store.DefaultBadgerConfig(dir))
	require.NoError(t, err)
	_, err = b.Write("i0.hif", []byte("o\n"))
	require.NoError(t, err)
	require.NoError(t, b.Close())

	reopened, err := store.OpenBadger(store.DefaultBadgerConfig(dir))
	require.NoError(t, err)
	defer reopened.Close()
	got, err := reopened.Read("i0.hif")
	require.NoError(t, err)
	assert.Equal(t, "o\n", string(got))
}

func TestOpenBadgerNeedsPath(t *testing.T) {
	_, err := store.OpenBadger(store.BadgerConfig{})
	assert.Error(t, err)
}
