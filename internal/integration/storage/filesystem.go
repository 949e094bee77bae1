// Package storage implements file storage for uploaded receipts.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ledgerboard/backend/internal/application/adapter"
)

// filesystemStorage implements adapter.ReceiptStorage on the local filesystem.
// Files are stored under a configured directory and served back through the
// configured base URL.
type filesystemStorage struct {
	dir     string
	baseURL string
}

// NewFilesystemStorage creates a new filesystem-backed receipt storage. The
// target directory is created if it does not exist.
func NewFilesystemStorage(dir, baseURL string) (adapter.ReceiptStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create receipt directory: %w", err)
	}

	return &filesystemStorage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save stores the file content under a generated name and returns its URL.
// Only the extension of the original filename is kept; the name itself is a
// fresh UUID so uploads can never collide or traverse paths.
func (s *filesystemStorage) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.New().String() + ext
	path := filepath.Join(s.dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create receipt file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write receipt file: %w", err)
	}

	return s.baseURL + "/" + name, nil
}
