// Package storage adapts gocloud.dev buckets to the domain ObjectStore.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"os"

	"academy/config"
	"academy/internal/domain/lifecycle"
	"academy/internal/domain/service"
	"academy/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

// Params defines the parameters required for the object store
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStore struct {
	bucket *blob.Bucket
}

// New opens the bucket named by upload.bucketUrl and closes it on shutdown.
func New(params Params) (service.ObjectStore, error) {
	bucketURL := params.Config.Upload.BucketURL

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	store, err := Open(ctx, bucketURL)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	params.Logger.Info("Object store opened", slog.String("scheme", schemeOf(bucketURL)))

	return store, nil
}

// Open opens a bucket by URL. Local file:// directories are created when missing.
func Open(ctx context.Context, bucketURL string) (service.ObjectStore, error) {
	if err := ensureLocalDir(bucketURL); err != nil {
		return nil, err
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", schemeOf(bucketURL))
	}

	return NewBlobStore(bucket), nil
}

// NewBlobStore wraps an already opened bucket.
func NewBlobStore(bucket *blob.Bucket) service.ObjectStore {
	return &blobStore{bucket: bucket}
}

func (s *blobStore) Put(ctx context.Context, key, contentType string, r io.Reader) error {
	if err := s.bucket.Upload(ctx, key, r, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return errors.Wrapf(err, "upload %s", key)
	}

	return nil
}

func (s *blobStore) Open(ctx context.Context, key string) (io.ReadCloser, *service.ObjectInfo, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil, service.ErrObjectNotFound
		}

		return nil, nil, errors.Wrapf(err, "open %s", key)
	}

	return reader, &service.ObjectInfo{
		Key:         key,
		ContentType: reader.ContentType(),
		Size:        reader.Size(),
	}, nil
}

func (s *blobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return service.ErrObjectNotFound
		}

		return errors.Wrapf(err, "delete %s", key)
	}

	return nil
}

func (s *blobStore) Close() error {
	return s.bucket.Close()
}

func ensureLocalDir(bucketURL string) error {
	u, err := url.Parse(bucketURL)
	if err != nil {
		return errors.Wrap(err, "parse bucket url")
	}
	if u.Scheme != "file" || u.Path == "" {
		return nil
	}

	if err := os.MkdirAll(u.Path, 0o750); err != nil {
		return errors.Wrapf(err, "create upload dir %s", u.Path)
	}

	return nil
}

// schemeOf keeps credentials that may sit in bucket URLs out of logs.
func schemeOf(bucketURL string) string {
	u, err := url.Parse(bucketURL)
	if err != nil || u.Scheme == "" {
		return "unknown"
	}

	return u.Scheme
}
