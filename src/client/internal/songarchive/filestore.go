package songarchive

import (
	"cloud.google.com/go/storage"
	"context"
	"github.com/cockroachdb/errors"
	"google.golang.org/api/option"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . FileStore
type FileStore interface {
	WriteFile(ctx context.Context, objectPath string, contents []byte) error
}

var _ FileStore = &GoogleFileStore{}

type GoogleFileStore struct {
	client *storage.Client
	bucket string
}

func NewGoogleFileStore(ctx context.Context, bucket string, opts ...option.ClientOption) (*GoogleFileStore, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create cloud storage client")
	}

	return &GoogleFileStore{
		client: client,
		bucket: bucket,
	}, nil
}

func (g *GoogleFileStore) WriteFile(ctx context.Context, objectPath string, contents []byte) error {
	writer := g.client.Bucket(g.bucket).Object(objectPath).NewWriter(ctx)
	writer.ContentType = "application/json"

	if _, err := writer.Write(contents); err != nil {
		_ = writer.Close()
		return errors.Wrapf(err, "Failed to write %s to bucket %s", objectPath, g.bucket)
	}

	if err := writer.Close(); err != nil {
		return errors.Wrapf(err, "Failed to finish writing %s to bucket %s", objectPath, g.bucket)
	}

	return nil
}

func (g *GoogleFileStore) Close() error {
	return g.client.Close()
}
