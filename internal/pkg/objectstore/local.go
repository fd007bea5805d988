package objectstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/derya/acadvault/internal/pkg/logger"
)

// LocalStore writes blobs to the local filesystem. Intended for development
// and tests; the stored files are served statically by the HTTP server.
type LocalStore struct {
	basePath string
	baseURL  string
}

// NewLocalStore creates a LocalStore rooted at basePath. baseURL is
// prepended to returned file URLs and must match where the directory is
// served from.
func NewLocalStore(basePath, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStore{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// Store writes the blob to basePath/key and returns its URL. A partially
// written file is removed on copy failure so no unreadable blob remains.
func (ls *LocalStore) Store(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	dstPath := filepath.Join(ls.basePath, filepath.Base(key))

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	return ls.PublicURL(key), nil
}

// Remove deletes the blob under key. Returns nil if the file doesn't exist.
func (ls *LocalStore) Remove(_ context.Context, key string) error {
	if key == "" {
		return nil
	}

	physicalPath := filepath.Join(ls.basePath, filepath.Base(key))

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// PublicURL returns the URL under which a stored key is served.
func (ls *LocalStore) PublicURL(key string) string {
	return ls.baseURL + "/" + filepath.Base(key)
}

// BasePath returns the storage root, used to configure static serving.
func (ls *LocalStore) BasePath() string {
	return ls.basePath
}
