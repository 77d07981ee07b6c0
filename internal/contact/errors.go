package contact

import (
	"errors"
	"fmt"
)

// Kind categorizes contact operation failures.
type Kind string

const (
	// KindEmptyName indicates a blank name.
	KindEmptyName Kind = "EMPTY_NAME"

	// KindEmptyPhone indicates a blank phone number.
	KindEmptyPhone Kind = "EMPTY_PHONE"

	// KindInvalidPhone indicates a phone that is not exactly ten digits.
	KindInvalidPhone Kind = "INVALID_PHONE"

	// KindInvalidEmail indicates a non-empty, malformed email.
	KindInvalidEmail Kind = "INVALID_EMAIL"

	// KindDuplicatePhone indicates the phone is already a key of the book.
	KindDuplicatePhone Kind = "DUPLICATE_PHONE"

	// KindNotFound indicates no contact matched.
	KindNotFound Kind = "NOT_FOUND"

	// KindInvalidSelection indicates a menu choice or match index out of range.
	KindInvalidSelection Kind = "INVALID_SELECTION"

	// KindIO indicates the contacts file could not be read or written.
	KindIO Kind = "IO_ERROR"
)

// Error is the failure type returned by every contact operation.
type Error struct {
	Kind    Kind
	Message string

	// Err is the underlying cause, set for KindIO.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an *Error of the given kind.
// Uses errors.As to handle wrapped errors.
func IsKind(err error, kind Kind) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}

// KindOf returns the kind of err, or "" if err is not an *Error.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

// IsValidation reports whether err is a recoverable input error, i.e. any
// kind other than KindIO.
func IsValidation(err error) bool {
	kind := KindOf(err)
	return kind != "" && kind != KindIO
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewIOError wraps a storage failure.
func NewIOError(message string, err error) *Error {
	return &Error{Kind: KindIO, Message: message, Err: err}
}

// NoMatch reports that a search for c found nothing.
func NoMatch(c Criterion) *Error {
	return newError(KindNotFound, "no contact found for %s", c)
}
