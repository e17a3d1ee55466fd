package cache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/mero_khata/internal/adapters/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCache_EmptySlot(t *testing.T) {
	c := cache.NewFileCache(t.TempDir())

	raw, ok, err := c.Read()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, raw)
}

func TestFileCache_WriteThenRead(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	c := cache.NewFileCache(dir)

	require.NoError(t, c.Write([]byte(`{"shopName":"A"}`)))
	require.NoError(t, c.Write([]byte(`{"shopName":"B"}`)))

	raw, ok, err := c.Read()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"shopName":"B"}`, string(raw))

	_, err = os.Stat(filepath.Join(dir, cache.SlotName+".json"))
	assert.NoError(t, err)
}

func TestFileCache_BlankFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, cache.SlotName+".json"), []byte("  \n"), 0o600))

	_, ok, err := cache.NewFileCache(dir).Read()
	require.NoError(t, err)
	assert.False(t, ok)
}
