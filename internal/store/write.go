package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/roach88/contactsbook/internal/contact"
)

// Save replaces the contacts file with the given book.
// Failures are returned as contact.KindIO errors.
func (s *FileStore) Save(book contact.Book) error {
	data, err := marshalBook(book)
	if err != nil {
		return contact.NewIOError("save contacts", err)
	}
	if err := writeFileAtomic(s.path, data, filePerm); err != nil {
		return contact.NewIOError("save contacts", fmt.Errorf("write %s: %w", s.path, err))
	}
	slog.Debug("contacts saved", "path", s.path, "count", len(book))
	return nil
}

// writeFileAtomic writes data to a temp file beside path, syncs it and
// renames it over path. The temp file is removed on any failure.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	syncDir(dir)
	return nil
}

// syncDir makes the rename durable where the platform supports it. The
// rename has already happened, so errors are ignored.
func syncDir(dir string) {
	f, err := os.Open(dir)
	if err != nil {
		return
	}
	defer f.Close()
	_ = f.Sync()
}
