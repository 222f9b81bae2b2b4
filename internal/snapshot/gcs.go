package snapshot

import (
	"context"
	"fmt"
	"path"
	"strconv"

	"cloud.google.com/go/storage"
)

// Mirror copies stored datasets to a Cloud Storage bucket so other consumers
// can read a season without access to the local data directory. The object
// layout matches the local one: <prefix>/<year>/<slug>.json.
type Mirror struct {
	bucket *storage.BucketHandle
	prefix string
}

// NewMirror opens a mirror on the named bucket.
func NewMirror(ctx context.Context, bucket, prefix string) (*Mirror, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &Mirror{bucket: client.Bucket(bucket), prefix: prefix}, nil
}

// Upload writes one dataset to the bucket.
func (m *Mirror) Upload(ctx context.Context, year int, slug string, raw []byte) error {
	name := path.Join(m.prefix, strconv.Itoa(year), slug+".json")
	w := m.bucket.Object(name).NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err := w.Write(raw); err != nil {
		w.Close()
		return fmt.Errorf("failed to upload %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", name, err)
	}
	return nil
}
