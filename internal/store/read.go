package store

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/roach88/contactsbook/internal/contact"
)

// Load reads the whole book. It never returns an error: every failure
// degrades to an empty book and is logged.
func (s *FileStore) Load() contact.Book {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("contacts file not found, starting empty", "path", s.path)
		} else {
			slog.Warn("contacts file unreadable, starting empty", "path", s.path, "error", err)
		}
		return contact.Book{}
	}

	book, err := unmarshalBook(data)
	if err != nil {
		slog.Warn("contacts file malformed, starting empty", "path", s.path, "error", err)
		return contact.Book{}
	}

	for phone := range book {
		if !contact.IsValidPhone(phone) {
			slog.Warn("contacts file has an invalid phone key", "path", s.path, "phone", phone)
		}
	}

	slog.Debug("contacts loaded", "path", s.path, "count", len(book))
	return book
}
