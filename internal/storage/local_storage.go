package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStorage persists snapshots to the local filesystem.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage creates a LocalStorage instance. The directory is created
// if it does not exist.
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	baseDir = strings.TrimSpace(baseDir)
	if baseDir == "" {
		baseDir = "datas/exports"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

// LocalBaseDir returns the root directory used for storing snapshots.
func (s *LocalStorage) LocalBaseDir() string {
	return s.baseDir
}

// SaveSnapshot writes the snapshot bytes to disk and returns a relative path
// that can later be used to build a public URL.
func (s *LocalStorage) SaveSnapshot(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty snapshot")
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	relativePath := buildSnapshotKey(time.Now())

	absPath := filepath.Join(s.baseDir, filepath.FromSlash(relativePath))
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", fmt.Errorf("create dir: %w", err)
	}
	if err := os.WriteFile(absPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	return relativePath, nil
}

var _ Storage = (*LocalStorage)(nil)
