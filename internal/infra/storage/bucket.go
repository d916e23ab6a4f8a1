// Package storage keeps user uploads in a gocloud.dev blob bucket. The bucket
// URL scheme selects the backend: file:// and mem:// for development,
// s3:// (including S3-compatible services such as Backblaze B2) and gs:// in production.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"postboard/config"
	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/domain/service"
	"postboard/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

// Params defines the dependencies of the bucket provider
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type bucketStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.FileStore, error) {
	cfg := params.Config.Storage

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", redactBucketURL(cfg.BucketURL))
	}

	params.Logger.Info("Upload bucket opened", slog.String("bucket", redactBucketURL(cfg.BucketURL)))

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBucketStore(bucket, cfg.PublicBaseURL), nil
}

// NewBucketStore wraps an already opened bucket.
func NewBucketStore(bucket *blob.Bucket, publicBaseURL string) service.FileStore {
	return &bucketStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *bucketStore) Put(ctx context.Context, key, contentType string, r io.Reader) error {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.Upload(ctx, key, r, opts); err != nil {
		return errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	return nil
}

func (s *bucketStore) List(ctx context.Context, prefix string) ([]*entity.StoredFile, error) {
	iter := s.bucket.List(&blob.ListOptions{Prefix: prefix})

	var files []*entity.StoredFile
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
		}
		if obj.IsDir {
			continue
		}

		files = append(files, &entity.StoredFile{
			Key:        obj.Key,
			Size:       obj.Size,
			ModifiedAt: obj.ModTime,
			URL:        s.URL(obj.Key),
		})
	}

	return files, nil
}

func (s *bucketStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", errors.WithStack(domainerrors.ErrFileNotFound.WithMessage("File %s not found", key))
		}

		return nil, "", errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	return reader, reader.ContentType(), nil
}

// URL returns the public URL of key, or an empty string when the bucket has
// no public base and objects are served through the API instead.
func (s *bucketStore) URL(key string) string {
	if s.publicBaseURL == "" {
		return ""
	}

	return s.publicBaseURL + "/" + key
}

// redactBucketURL drops query parameters, which may carry credentials.
func redactBucketURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "invalid bucket url"
	}
	parsed.RawQuery = ""
	parsed.User = nil

	return parsed.String()
}
