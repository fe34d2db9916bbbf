package storage_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"inkwell/internal/adapters/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDiskStoreSave(t *testing.T) {
	root := t.TempDir()
	store := storage.NewDiskStore(root, "/media", zap.NewNop())

	ref, err := store.Save(context.Background(), "../../etc/cat.png", strings.NewReader("png"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "posts/"))
	assert.True(t, strings.HasSuffix(ref, "_cat.png"))

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(ref)))
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))

	assert.Equal(t, "/media/"+ref, store.URL(ref))
	assert.Empty(t, store.URL(""))
}

func TestDiskStoreRejectsEmptyName(t *testing.T) {
	store := storage.NewDiskStore(t.TempDir(), "/media/", zap.NewNop())
	_, err := store.Save(context.Background(), "", strings.NewReader("x"))
	assert.Error(t, err)
}

type failingReader struct{ sent bool }

func (r *failingReader) Read(p []byte) (int, error) {
	if r.sent {
		return 0, errors.New("connection reset")
	}
	r.sent = true
	return copy(p, "partial"), nil
}

func TestDiskStoreSaveLeavesNothingOnCopyError(t *testing.T) {
	root := t.TempDir()
	store := storage.NewDiskStore(root, "/media/", zap.NewNop())

	_, err := store.Save(context.Background(), "cat.png", &failingReader{})
	require.Error(t, err)

	entries, err := os.ReadDir(filepath.Join(root, "posts"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDiskStoreDelete(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store := storage.NewDiskStore(root, "/media/", zap.NewNop())

	ref, err := store.Save(ctx, "cat.png", strings.NewReader("png"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, ref))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(ref)))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Delete(ctx, ref), "already gone")
	assert.Error(t, store.Delete(ctx, "../secrets.txt"))
}
