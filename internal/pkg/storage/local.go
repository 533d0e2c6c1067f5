package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// LocalStorage manages a flat directory of files served under a URL prefix
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates a new local storage instance
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// BasePath returns the directory backing this store
func (s *LocalStorage) BasePath() string {
	return s.basePath
}

// Put stores a file under key
func (s *LocalStorage) Put(ctx context.Context, key string, reader io.Reader) error {
	fullPath := filepath.Join(s.basePath, filepath.Base(key))

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		os.Remove(fullPath) // Cleanup on error
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// Path returns the filesystem path for key. Keys are flattened to their
// base name so callers cannot escape the directory.
func (s *LocalStorage) Path(key string) string {
	return filepath.Join(s.basePath, filepath.Base(key))
}

// Exists checks if a file exists
func (s *LocalStorage) Exists(key string) bool {
	info, err := os.Stat(s.Path(key))
	return err == nil && !info.IsDir()
}

// GetURL returns the URL for a stored file
func (s *LocalStorage) GetURL(key string) string {
	return fmt.Sprintf("%s/%s", s.baseURL, filepath.Base(key))
}

// List returns all stored files, sorted by name
func (s *LocalStorage) List() ([]FileInfo, error) {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read storage directory: %w", err)
	}

	files := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, FileInfo{
			Name: entry.Name(),
			URL:  s.GetURL(entry.Name()),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// CleanupExpired removes files older than maxAge (by mtime) and returns the
// number of files deleted
func (s *LocalStorage) CleanupExpired(maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)
	count := 0

	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return 0, err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(s.basePath, entry.Name())); err == nil {
				count++
			}
		}
	}

	return count, nil
}
