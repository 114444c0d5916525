package gcs

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// ObjectStore abstracts the bucket so the loader can be tested against an
// in-memory implementation.
type ObjectStore interface {
	// List returns the names of all objects under prefix.
	List(ctx context.Context, prefix string) ([]string, error)
	// Read returns the raw bytes of one object.
	Read(ctx context.Context, name string) ([]byte, error)
}

// BucketStore is the production ObjectStore backed by a GCS bucket.
type BucketStore struct {
	bucket *storage.BucketHandle
}

// NewBucketStore opens a client against the named bucket. credentialsFile is
// optional; without it the client uses application default credentials.
func NewBucketStore(ctx context.Context, bucketName, credentialsFile string) (*BucketStore, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &BucketStore{bucket: client.Bucket(bucketName)}, nil
}

// List implements ObjectStore.
func (s *BucketStore) List(ctx context.Context, prefix string) ([]string, error) {
	it := s.bucket.Objects(ctx, &storage.Query{Prefix: prefix})

	var names []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list %q: %w", prefix, err)
		}
		names = append(names, attrs.Name)
	}
	return names, nil
}

// Read implements ObjectStore.
func (s *BucketStore) Read(ctx context.Context, name string) ([]byte, error) {
	r, err := s.bucket.Object(name).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", name, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", name, err)
	}
	return data, nil
}
