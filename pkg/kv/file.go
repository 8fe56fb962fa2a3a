package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore implements Store on the local filesystem, one file per key
// under a base directory. Values survive process restarts, which makes
// it the persistent medium. Writes go through a temp file plus rename
// so a crash mid-write never leaves a truncated record behind.
// All operations are confined to the base directory to prevent path
// traversal through hostile keys.
type FileStore struct {
	baseDir string
}

// NewFileStore creates a filesystem-backed store rooted at baseDir.
// The directory is created if it does not exist.
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("%w: empty base directory", ErrInvalidConfig)
	}

	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve base directory: %v", ErrInvalidConfig, err)
	}

	if err := os.MkdirAll(absBaseDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: failed to create base directory: %v", ErrInvalidConfig, err)
	}

	return &FileStore{baseDir: absBaseDir}, nil
}

// Get reads the value stored under key.
func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	path, err := s.resolvePath(key)
	if err != nil {
		return nil, err
	}

	value, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}

	return value, nil
}

// Set writes value under key atomically.
func (s *FileStore) Set(ctx context.Context, key string, value []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	path, err := s.resolvePath(key)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0644); err != nil {
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return nil
}

// Delete removes the file for key. Missing keys are ignored.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	path, err := s.resolvePath(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

// resolvePath maps a key to an absolute file path and ensures it stays
// within the base directory.
func (s *FileStore) resolvePath(key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}

	absPath, err := filepath.Abs(filepath.Join(s.baseDir, filepath.Clean(key)))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}

	if !strings.HasPrefix(absPath, s.baseDir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}

	return absPath, nil
}
