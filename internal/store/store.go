package store

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/roach88/contactsbook/internal/config"
)

// filePerm is applied to the contacts file on every save.
const filePerm = 0o644

// FileStore loads and saves the contact book at a fixed path.
type FileStore struct {
	path string
}

// NewFileStore creates a store for the configured path.
// The file does not need to exist yet.
func NewFileStore(cfg config.StoreConfig) (*FileStore, error) {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return nil, errors.New("store path is required")
	}
	return &FileStore{path: filepath.Clean(path)}, nil
}

// Path returns the contacts file path.
func (s *FileStore) Path() string {
	return s.path
}
