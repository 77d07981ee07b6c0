package contact

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Contact is a single address-book record. The phone number is the Book key.
type Contact struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// Book maps phone numbers to contacts.
type Book map[string]Contact

// Entry pairs a contact with its phone key for ordered results.
type Entry struct {
	Phone   string `json:"phone" yaml:"phone"`
	Contact `yaml:",inline"`
}

// Clone returns a shallow copy of the book. Contact is a value type, so the
// copy shares nothing mutable with the original.
func (b Book) Clone() Book {
	out := make(Book, len(b))
	for phone, c := range b {
		out[phone] = c
	}
	return out
}

// Lookup returns the entry for phone.
func (b Book) Lookup(phone string) (Entry, bool) {
	c, ok := b[phone]
	if !ok {
		return Entry{}, false
	}
	return Entry{Phone: phone, Contact: c}, true
}

// TitleCase normalises a display name: NFC, then upper-case the first letter
// of each word and lower-case the rest.
//
// A new Caser is built per call; cases.Caser carries state and is not safe
// for concurrent use.
func TitleCase(name string) string {
	return cases.Title(language.Und).String(norm.NFC.String(name))
}

func normalizeName(name string) string {
	return TitleCase(strings.TrimSpace(name))
}
