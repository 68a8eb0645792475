// Copyright (c) 2026 the ScriptHub authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package blob

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Object describes a stored blob: the key it lives under and the public URL
// that serves it.
type Object struct {
	Key string
	URL string
}

// Uploader stores raw bytes under a generated key and returns a public URL.
// Delete exists so a caller can compensate when the step after an upload
// fails.
type Uploader interface {
	Upload(name string, data []byte) (Object, error)
	Delete(key string) error
}

// FileStore keeps blobs on the local filesystem under Dir and mints URLs
// beneath BaseURL. The router serves Dir at that prefix.
type FileStore struct {
	Dir     string
	BaseURL string
}

func NewFileStore(dir, baseURL string) *FileStore {
	return &FileStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}
}

// Upload writes data under a timestamp-prefixed key derived from name.
// Two uploads of the same name within the same millisecond could collide;
// acceptable for this domain.
func (f *FileStore) Upload(name string, data []byte) (Object, error) {
	key := fmt.Sprintf("thumbnails/%d-%s", time.Now().UnixMilli(), sanitize(name))

	path := filepath.Join(f.Dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Object{}, fmt.Errorf("failed to prepare blob directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Object{}, fmt.Errorf("failed to store blob: %w", err)
	}

	slog.Info("blob stored", "key", key, "size", humanize.Bytes(uint64(len(data))))

	return Object{Key: key, URL: f.BaseURL + "/" + key}, nil
}

// Delete removes a previously uploaded blob. Missing keys are not an error.
func (f *FileStore) Delete(key string) error {
	path := filepath.Join(f.Dir, filepath.FromSlash(key))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	return nil
}

// sanitize keeps the suggested name from escaping the key namespace or
// producing an unservable path.
func sanitize(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "" || name == "." || name == "/" {
		return "upload"
	}
	return name
}
