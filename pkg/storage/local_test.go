package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalImageStore(dir, "/uploads")

	publicPath, err := store.Save("photo.PNG", []byte("image-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(publicPath, "/uploads/"))
	assert.True(t, strings.HasSuffix(publicPath, ".png"))

	onDisk := filepath.Join(dir, filepath.Base(publicPath))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	require.NoError(t, store.Remove(publicPath))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveIsLenient(t *testing.T) {
	store := NewLocalImageStore(t.TempDir(), "/uploads")

	// missing file: not an error
	assert.NoError(t, store.Remove("/uploads/gone.png"))

	// paths outside the store's prefix are ignored
	assert.NoError(t, store.Remove("/etc/passwd"))
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store := NewLocalImageStore(dir, "/uploads")

	_, err := store.Save("a.jpg", []byte{1})
	require.NoError(t, err)
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store := NewLocalImageStore(t.TempDir(), "/uploads")

	first, err := store.Save("same.png", []byte{1})
	require.NoError(t, err)
	second, err := store.Save("same.png", []byte{2})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
