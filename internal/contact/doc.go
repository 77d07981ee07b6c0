// Package contact holds the address-book domain: the Contact record, the
// phone-keyed Book, field validation, and the pure operations that transform
// a Book.
//
// Operations never perform I/O. Each one takes a Book and returns either a
// new Book or a typed *Error; the input Book is left untouched so a caller
// can discard the result on failure without restoring anything.
//
// # Keys
//
// The phone number is the primary key. It must be exactly ten ASCII digits
// and is stored only as the map key, never inside the Contact value.
//
// # Names
//
// Names are trimmed, NFC normalised and title-cased before they are stored,
// so "john  doe" is kept as "John  Doe" and "JOHN DOE" as "John Doe".
package contact
