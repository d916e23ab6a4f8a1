package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBucketStore_PutListOpen(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBucketStore(bucket, "https://cdn.example.com/")
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "users/1/a.txt", "text/plain", strings.NewReader("hello")))
	require.NoError(t, store.Put(ctx, "users/2/b.txt", "text/plain", strings.NewReader("world!")))

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := store.List(ctx, "users/1/")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "users/1/a.txt", mine[0].Key)
	assert.EqualValues(t, 5, mine[0].Size)
	assert.Equal(t, "https://cdn.example.com/users/1/a.txt", mine[0].URL)
	assert.False(t, mine[0].ModifiedAt.IsZero())

	rc, contentType, err := store.Open(ctx, "users/2/b.txt")
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "world!", string(body))
	assert.Equal(t, "text/plain", contentType)
}

func TestBucketStore_OpenMissing(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	_, _, err := NewBucketStore(bucket, "").Open(context.Background(), "nope")
	assert.True(t, errors.Is(err, domainerrors.ErrFileNotFound))
}

func TestBucketStore_URLWithoutPublicBase(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	assert.Empty(t, NewBucketStore(bucket, "").URL("users/1/a.txt"))
}

func TestRedactBucketURL(t *testing.T) {
	assert.Equal(t, "s3://uploads", redactBucketURL("s3://uploads?region=us-west-002&endpoint=s3.example.com"))
	assert.Equal(t, "file:///tmp/data", redactBucketURL("file:///tmp/data?create_dir=true"))
}
