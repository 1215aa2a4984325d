package storage

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"academy/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStore_PutOpenDelete(t *testing.T) {
	ctx := context.Background()
	store := NewBlobStore(memblob.OpenBucket(nil))
	t.Cleanup(func() { _ = store.Close() })

	payload := []byte("\xff\xd8\xff\xe0fake-jpeg")
	require.NoError(t, store.Put(ctx, "1700000000000-abcdef0123456789.jpg", "image/jpeg", bytes.NewReader(payload)))

	reader, info, err := store.Open(ctx, "1700000000000-abcdef0123456789.jpg")
	require.NoError(t, err)
	defer reader.Close()

	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.Equal(t, "image/jpeg", info.ContentType)
	assert.Equal(t, int64(len(payload)), info.Size)

	require.NoError(t, store.Delete(ctx, "1700000000000-abcdef0123456789.jpg"))

	_, _, err = store.Open(ctx, "1700000000000-abcdef0123456789.jpg")
	require.ErrorIs(t, err, service.ErrObjectNotFound)
}

func TestBlobStore_DeleteMissing(t *testing.T) {
	store := NewBlobStore(memblob.OpenBucket(nil))
	t.Cleanup(func() { _ = store.Close() })

	err := store.Delete(context.Background(), "missing.png")
	require.ErrorIs(t, err, service.ErrObjectNotFound)
}

func TestOpen_FileBucketCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	bucketURL := (&url.URL{Scheme: "file", Path: dir}).String()

	store, err := Open(context.Background(), bucketURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	stat, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestSchemeOf(t *testing.T) {
	assert.Equal(t, "s3", schemeOf("s3://user:secret@bucket?region=us-east-1"))
	assert.Equal(t, "mem", schemeOf("mem://"))
	assert.Equal(t, "unknown", schemeOf("no-scheme"))
}
