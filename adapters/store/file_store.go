package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/layer-3/questrun/core"
	"github.com/layer-3/questrun/ports"
)

// FileStore is a JSON-file implementation of the CookieStore interface
type FileStore struct {
	path string
}

// NewFileStore creates a new file-backed cookie store
func NewFileStore(path string) ports.CookieStore {
	return &FileStore{path: path}
}

// Load reads the cookie file. A missing file yields an empty set, not an
// error.
func (s *FileStore) Load(ctx context.Context) ([]core.Cookie, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cookie file: %w", err)
	}

	var cookies []core.Cookie
	if err := json.Unmarshal(data, &cookies); err != nil {
		return nil, fmt.Errorf("failed to decode cookie file: %w", err)
	}
	return cookies, nil
}

// Save serializes the cookie set to the file, replacing previous content.
func (s *FileStore) Save(ctx context.Context, cookies []core.Cookie) error {
	data, err := json.MarshalIndent(cookies, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cookies: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write cookie file: %w", err)
	}
	return nil
}
