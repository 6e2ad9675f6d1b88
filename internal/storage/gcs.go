package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// GCS is a Store over one Cloud Storage bucket and prefix.
type GCS struct {
	client *storage.Client
	bucket string
	prefix string
	owned  bool // close the client on Close
}

// NewGCS creates a GCS store. prefix is "" or ends with "/".
func NewGCS(client *storage.Client, bucket, prefix string) *GCS {
	return &GCS{client: client, bucket: bucket, prefix: prefix}
}

// List lists objects under the prefix whose names end with suffix.
func (g *GCS) List(ctx context.Context, suffix string, limit int) ([]Object, error) {
	query := &storage.Query{Prefix: g.prefix}
	if err := query.SetAttrSelection([]string{"Name", "Size", "Updated"}); err != nil {
		return nil, fmt.Errorf("list gs://%s: %w", g.bucket, err)
	}

	var objects []Object
	it := g.client.Bucket(g.bucket).Objects(ctx, query)
	for seen := 0; limit <= 0 || seen < limit; seen++ {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list gs://%s/%s: %w", g.bucket, g.prefix, err)
		}
		if !strings.HasSuffix(attrs.Name, suffix) || strings.HasSuffix(attrs.Name, "/") {
			continue
		}
		objects = append(objects, Object{
			Name:    strings.TrimPrefix(attrs.Name, g.prefix),
			Size:    attrs.Size,
			Updated: attrs.Updated,
		})
	}
	return objects, nil
}

// Read downloads one object.
func (g *GCS) Read(ctx context.Context, name string) ([]byte, error) {
	r, err := g.client.Bucket(g.bucket).Object(g.prefix + name).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, fmt.Errorf("%w: gs://%s/%s%s", ErrNotFound, g.bucket, g.prefix, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read gs://%s/%s%s: %w", g.bucket, g.prefix, name, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read gs://%s/%s%s: %w", g.bucket, g.prefix, name, err)
	}
	return data, nil
}

// Write uploads data as a JSON object, replacing any existing object.
func (g *GCS) Write(ctx context.Context, name string, data []byte) error {
	w := g.client.Bucket(g.bucket).Object(g.prefix + name).NewWriter(ctx)
	w.ContentType = "application/json"

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("write gs://%s/%s%s: %w", g.bucket, g.prefix, name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("write gs://%s/%s%s: %w", g.bucket, g.prefix, name, err)
	}
	return nil
}

// Close releases the client if Open created it.
func (g *GCS) Close() error {
	if g.owned {
		return g.client.Close()
	}
	return nil
}
