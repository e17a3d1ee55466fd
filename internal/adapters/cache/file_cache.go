package cache

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	portsrepo "github.com/SscSPs/mero_khata/internal/core/ports/repositories"
	"github.com/SscSPs/mero_khata/internal/utils/fsutil"
)

// SlotName is the single named slot the working document is cached under.
const SlotName = "meroKhataData"

// FileCache keeps the last saved document in <dir>/meroKhataData.json.
type FileCache struct {
	mu   sync.RWMutex
	path string
}

// NewFileCache creates a cache rooted at dir. The directory is created on first write.
func NewFileCache(dir string) portsrepo.LocalDocumentCache {
	return &FileCache{path: filepath.Join(dir, SlotName+".json")}
}

// Read returns the slot content; an absent or empty slot reports ok=false.
func (c *FileCache) Read() ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	raw, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cache slot %s: %w", c.path, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, false, nil
	}
	return raw, true, nil
}

// Write replaces the slot content.
func (c *FileCache) Write(raw []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := fsutil.WriteFileAtomic(c.path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write cache slot: %w", err)
	}
	return nil
}
