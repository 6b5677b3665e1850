package domain

import (
	"os"
	"path/filepath"
)

const (
	// ConfigFileName is the default name of the swap configuration file.
	ConfigFileName = "swap.yaml"

	// PoolDirName is the directory under the user cache dir holding filesystem pools.
	PoolDirName = "swap"

	// CacheDirEnv overrides the filesystem pool root directory.
	CacheDirEnv = "SWAP_CACHE_DIR"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for cache files (rw-------).
	FilePerm = 0o600
)

// DefaultPoolDir returns the root directory for filesystem cache pools.
// SWAP_CACHE_DIR wins; otherwise the user cache dir is used, falling back to the temp dir.
func DefaultPoolDir() string {
	if dir := os.Getenv(CacheDirEnv); dir != "" {
		return filepath.Clean(dir)
	}
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, PoolDirName)
	}
	return filepath.Join(os.TempDir(), PoolDirName)
}
