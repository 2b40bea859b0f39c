package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_PutAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/uploads/")
	require.NoError(t, err)

	obj, err := store.Put(context.Background(), "Foto.JPG", strings.NewReader("resim"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(obj.Key, ".jpg"))
	assert.Equal(t, "/uploads/"+obj.Key, obj.URL)
	assert.EqualValues(t, 5, obj.Size)

	data, err := os.ReadFile(filepath.Join(dir, obj.Key))
	require.NoError(t, err)
	assert.Equal(t, "resim", string(data))

	require.NoError(t, store.Delete(context.Background(), obj.Key))
	_, err = os.Stat(filepath.Join(dir, obj.Key))
	assert.True(t, os.IsNotExist(err))

	// ikinci silme sessizce geçer
	assert.NoError(t, store.Delete(context.Background(), obj.Key))
}

func TestLocalStore_DistinctKeys(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	a, err := store.Put(context.Background(), "a.png", strings.NewReader("1"))
	require.NoError(t, err)
	b, err := store.Put(context.Background(), "a.png", strings.NewReader("1"))
	require.NoError(t, err)
	assert.NotEqual(t, a.Key, b.Key)
}

func TestSafeExt(t *testing.T) {
	assert.Equal(t, ".mp4", safeExt("video.MP4"))
	assert.Equal(t, "", safeExt("noext"))
	assert.Equal(t, "", safeExt("x.ph$p"))
}
