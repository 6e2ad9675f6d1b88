package storage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		raw     string
		want    Location
		wantErr bool
	}{
		{"gs://tasks", Location{Scheme: "gs", Bucket: "tasks"}, false},
		{"gs://tasks/incoming/", Location{Scheme: "gs", Bucket: "tasks", Path: "incoming/"}, false},
		{"gs://tasks/a/b", Location{Scheme: "gs", Bucket: "tasks", Path: "a/b/"}, false},
		{"tasks-bucket", Location{Scheme: "gs", Bucket: "tasks-bucket"}, false},
		{"file:///tmp/tasks", Location{Scheme: "file", Path: "/tmp/tasks"}, false},
		{"./out", Location{Scheme: "file", Path: "./out"}, false},
		{"/var/data", Location{Scheme: "file", Path: "/var/data"}, false},
		{"", Location{}, true},
		{"gs://", Location{}, true},
	}

	for _, tt := range tests {
		got, err := ParseLocation(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLocation(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLocation(%q) = %+v, want %+v", tt.raw, got, tt.want)
		}
	}
}

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDir_ListFiltersBySuffix(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b.json", `{}`)
	writeFile(t, root, "a.json", `{}`)
	writeFile(t, root, "notes.txt", "x")
	writeFile(t, root, "sub/c.json", `{}`)
	writeFile(t, root, ".hidden.json", `{}`)

	d, err := NewDir(root)
	require.NoError(t, err)

	objects, err := d.List(context.Background(), ".json", 0)
	require.NoError(t, err)

	var names []string
	for _, o := range objects {
		names = append(names, o.Name)
	}
	assert.Equal(t, []string{"a.json", "b.json", "sub/c.json"}, names)
}

func TestDir_ListLimitCountsExaminedObjects(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "x")
	writeFile(t, root, "b.json", `{}`)
	writeFile(t, root, "c.json", `{}`)

	d, err := NewDir(root)
	require.NoError(t, err)

	objects, err := d.List(context.Background(), ".json", 2)
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "b.json", objects[0].Name)
}

func TestDir_ReadWrite(t *testing.T) {
	d, err := NewDir(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, d.Write(ctx, "out/001.json", []byte(`{"id": 1}`)))
	require.NoError(t, d.Write(ctx, "out/001.json", []byte(`{"id": 2}`)))

	got, err := d.Read(ctx, "out/001.json")
	require.NoError(t, err)
	assert.Equal(t, `{"id": 2}`, string(got))

	// Temp files from atomic writes must not be left behind.
	entries, err := os.ReadDir(filepath.Join(d.root, "out"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDir_ReadMissing(t *testing.T) {
	d, err := NewDir(t.TempDir())
	require.NoError(t, err)

	_, err = d.Read(context.Background(), "absent.json")
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
}

func TestDir_RejectsEscapingNames(t *testing.T) {
	d, err := NewDir(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, d.Write(context.Background(), "../escape.json", []byte("{}")))
	_, err = d.Read(context.Background(), "/etc/passwd")
	assert.Error(t, err)
}

func TestOpen_File(t *testing.T) {
	root := t.TempDir()
	s, err := Open(context.Background(), "file://"+root)
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.(*Dir)
	assert.True(t, ok, "expected *Dir, got %T", s)
}

func TestConsole_Write(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	require.NoError(t, c.Write(context.Background(), "task.json", []byte(`{"id": 1}`)))
	assert.Equal(t, "DRYRUN: Processed task.json\n{\"id\": 1}\n", buf.String())
}
