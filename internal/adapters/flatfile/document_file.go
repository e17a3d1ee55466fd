// Package flatfile stores the shared document as a single JSON file on disk.
package flatfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/SscSPs/mero_khata/internal/apperrors"
	portsrepo "github.com/SscSPs/mero_khata/internal/core/ports/repositories"
	"github.com/SscSPs/mero_khata/internal/utils/fsutil"
)

type DocumentFile struct {
	mu   sync.RWMutex
	path string
}

// NewDocumentFile creates a repository backed by the file at path.
func NewDocumentFile(path string) portsrepo.DocumentRepository {
	return &DocumentFile{path: path}
}

// Load returns the file content or apperrors.ErrNotFound when the file is missing or empty.
func (f *DocumentFile) Load(_ context.Context) ([]byte, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read document file %s: %w", f.path, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return raw, nil
}

// Store replaces the file content.
func (f *DocumentFile) Store(_ context.Context, raw []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := fsutil.WriteFileAtomic(f.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to store document file: %w", err)
	}
	return nil
}
