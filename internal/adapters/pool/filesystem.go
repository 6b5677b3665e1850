package pool

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/zeebo/xxh3"
	"go.trai.ch/swap/internal/core/domain"
	"go.trai.ch/zerr"
)

// Filesystem stores one file per key under <root>/<namespace>.
type Filesystem struct {
	dir string
	ttl time.Duration
}

// envelope is the on-disk form of one entry.
type envelope struct {
	Key string `json:"key"`
	// ExpiresAt is a unix timestamp in nanoseconds; zero never expires.
	ExpiresAt int64  `json:"expires_at"`
	Value     []byte `json:"value"`
}

// NewFilesystem creates the namespace directory and returns a pool over it.
func NewFilesystem(root, namespace string, ttl time.Duration) (*Filesystem, error) {
	if err := checkNamespace(namespace); err != nil {
		return nil, err
	}
	dir := filepath.Join(filepath.Clean(root), namespace)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create cache directory"), "dir", dir)
	}
	return &Filesystem{dir: dir, ttl: ttl}, nil
}

// Dir returns the directory holding the entries.
func (f *Filesystem) Dir() string {
	return f.dir
}

func (f *Filesystem) path(key string) string {
	sum := xxh3.HashString128(key).Bytes()
	return filepath.Join(f.dir, hex.EncodeToString(sum[:]))
}

// Get returns the value stored under key. Expired entries are removed.
func (f *Filesystem) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	path := f.path(key)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from a hash
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.With(zerr.Wrap(err, "failed to read cache entry"), "key", key)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, "failed to decode cache entry"), "key", key)
	}
	if env.Key != key {
		return nil, false, nil
	}
	if env.ExpiresAt != 0 && time.Now().UnixNano() >= env.ExpiresAt {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, false, zerr.With(zerr.Wrap(err, "failed to remove expired cache entry"), "key", key)
		}
		return nil, false, nil
	}
	return env.Value, true, nil
}

// Set writes value under key through a temp file and an atomic rename.
func (f *Filesystem) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := envelope{Key: key, Value: value}
	if f.ttl > 0 {
		env.ExpiresAt = time.Now().Add(f.ttl).UnixNano()
	}
	data, err := json.Marshal(env)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to encode cache entry"), "key", key)
	}

	tmpFile, err := os.CreateTemp(f.dir, ".tmp-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp cache file")
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, err := os.Stat(tmpName); err == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, "failed to write cache file")
	}
	if err := tmpFile.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temp cache file")
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to chmod cache file")
	}
	if err := os.Rename(tmpName, f.path(key)); err != nil {
		return zerr.Wrap(err, "failed to rename temp cache file")
	}
	return nil
}

// Delete removes key. A missing entry is not an error.
func (f *Filesystem) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(f.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to delete cache entry"), "key", key)
	}
	return nil
}

// Clear removes every file in the namespace directory.
func (f *Filesystem) Clear(ctx context.Context) error {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to list cache directory")
	}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(f.dir, e.Name())); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(err, "failed to clear cache entry"), "file", e.Name())
		}
	}
	return nil
}
