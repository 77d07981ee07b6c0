package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/roach88/contactsbook/internal/contact"
)

// fileIndent matches the layout of existing contacts files.
const fileIndent = "    "

// marshalBook encodes the book as indented JSON with sorted keys.
// HTML escaping is disabled so names and emails stay human-readable.
func marshalBook(book contact.Book) ([]byte, error) {
	if book == nil {
		book = contact.Book{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", fileIndent)
	if err := enc.Encode(book); err != nil {
		return nil, fmt.Errorf("marshal book: %w", err)
	}
	return buf.Bytes(), nil
}

// unmarshalBook decodes file content. Blank content and a JSON null decode
// to an empty book; anything that is not an object of objects is an error.
func unmarshalBook(data []byte) (contact.Book, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return contact.Book{}, nil
	}
	var book contact.Book
	if err := json.Unmarshal(data, &book); err != nil {
		return nil, fmt.Errorf("unmarshal book: %w", err)
	}
	if book == nil {
		book = contact.Book{}
	}
	return book, nil
}
