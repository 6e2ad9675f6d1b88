// Package storage reads task files and writes annotation records.
//
// Locations are "gs://bucket[/prefix]" or a bare bucket name for Cloud
// Storage, and "file://dir" or a filesystem path for a local directory.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// ErrNotFound is returned when a named object does not exist.
var ErrNotFound = errors.New("object not found")

// Object describes a listed object.
type Object struct {
	Name    string // relative to the store's prefix, slash separated
	Size    int64
	Updated time.Time
}

// Source lists and reads task files.
type Source interface {
	// List returns objects whose names end with suffix. limit > 0 caps the
	// number of objects examined, matching or not.
	List(ctx context.Context, suffix string, limit int) ([]Object, error)
	Read(ctx context.Context, name string) ([]byte, error)
}

// Sink receives output records.
type Sink interface {
	Write(ctx context.Context, name string, data []byte) error
}

// Store is a Source and Sink over one location.
type Store interface {
	Source
	Sink
	Close() error
}

// Location is a parsed store location.
type Location struct {
	Scheme string // "gs" or "file"
	Bucket string // gs only
	Path   string // object prefix for gs, directory for file
}

// ParseLocation parses a configured store location.
func ParseLocation(raw string) (Location, error) {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return Location{}, errors.New("empty storage location")
	case strings.HasPrefix(raw, "gs://"):
		bucket, prefix, _ := strings.Cut(strings.TrimPrefix(raw, "gs://"), "/")
		if bucket == "" {
			return Location{}, fmt.Errorf("missing bucket in %q", raw)
		}
		return Location{Scheme: "gs", Bucket: bucket, Path: normalizePrefix(prefix)}, nil
	case strings.HasPrefix(raw, "file://"):
		return Location{Scheme: "file", Path: strings.TrimPrefix(raw, "file://")}, nil
	case strings.ContainsAny(raw, `/\`) || strings.HasPrefix(raw, "."):
		return Location{Scheme: "file", Path: raw}, nil
	default:
		return Location{Scheme: "gs", Bucket: raw}, nil
	}
}

// Open opens the store at location. opts configure the Cloud Storage client
// and are ignored for local directories.
func Open(ctx context.Context, location string, opts ...option.ClientOption) (Store, error) {
	loc, err := ParseLocation(location)
	if err != nil {
		return nil, err
	}

	if loc.Scheme == "file" {
		return NewDir(loc.Path)
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage client: %w", err)
	}
	gcs := NewGCS(client, loc.Bucket, loc.Path)
	gcs.owned = true
	return gcs, nil
}

func normalizePrefix(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return ""
	}
	return prefix + "/"
}
