// Package addressbook runs contact operations against persistent storage:
// load the whole book, apply one pure operation, save on success, and
// record the mutation in the journal when one is configured.
package addressbook

import (
	"context"
	"log/slog"
	"strings"

	"github.com/roach88/contactsbook/internal/contact"
	"github.com/roach88/contactsbook/internal/journal"
)

// Store is the whole-book persistence contract.
type Store interface {
	Load() contact.Book
	Save(contact.Book) error
}

// Recorder appends mutation events. *journal.Journal implements it.
type Recorder interface {
	Append(ctx context.Context, ev journal.Event) (journal.Event, error)
}

// Service is stateless between calls: every method reloads the store.
type Service struct {
	store    Store
	recorder Recorder
}

// New creates a service. rec may be nil to disable journaling.
func New(store Store, rec Recorder) *Service {
	return &Service{store: store, recorder: rec}
}

// Add validates and inserts a contact, returning the stored entry.
func (s *Service) Add(ctx context.Context, name, phone, email string) (contact.Entry, error) {
	book := s.store.Load()
	next, err := contact.Add(book, name, phone, email)
	if err != nil {
		return contact.Entry{}, err
	}

	entry := addedEntry(book, next)
	if err := s.store.Save(next); err != nil {
		return contact.Entry{}, err
	}

	s.record(ctx, journal.Event{Action: journal.ActionAdd, Phone: entry.Phone, After: &entry})
	return entry, nil
}

// Search returns the contacts matching c.
func (s *Service) Search(c contact.Criterion) ([]contact.Entry, error) {
	return contact.Find(s.store.Load(), c)
}

// List returns all contacts sorted by name.
func (s *Service) List() []contact.Entry {
	return contact.ListSorted(s.store.Load())
}

// Count returns the number of stored contacts.
func (s *Service) Count() int {
	return len(s.store.Load())
}

// Delete removes the contact keyed by phone and returns it.
func (s *Service) Delete(ctx context.Context, phone string) (contact.Entry, error) {
	book := s.store.Load()
	next, err := contact.Delete(book, phone)
	if err != nil {
		return contact.Entry{}, err
	}
	removed, _ := book.Lookup(phone)

	if err := s.store.Save(next); err != nil {
		return contact.Entry{}, err
	}

	s.record(ctx, journal.Event{Action: journal.ActionDelete, Phone: phone, Before: &removed})
	return removed, nil
}

// Update changes one field of the contact keyed by phone and returns the
// updated entry, which carries the new key after a phone change.
func (s *Service) Update(ctx context.Context, phone string, field contact.Field, value string) (contact.Entry, error) {
	book := s.store.Load()
	before, _ := book.Lookup(phone)
	next, err := contact.Update(book, phone, field, value)
	if err != nil {
		return contact.Entry{}, err
	}

	key := phone
	if field == contact.FieldPhone {
		key = strings.TrimSpace(value)
	}
	after, _ := next.Lookup(key)

	if err := s.store.Save(next); err != nil {
		return contact.Entry{}, err
	}

	s.record(ctx, journal.Event{
		Action: journal.ActionUpdate,
		Phone:  phone,
		Field:  field.String(),
		Before: &before,
		After:  &after,
	})
	return after, nil
}

// Clear removes every contact and returns how many were removed.
// Confirmation is the caller's job.
func (s *Service) Clear(ctx context.Context) (int, error) {
	book := s.store.Load()
	if err := s.store.Save(contact.ClearAll(book)); err != nil {
		return 0, err
	}

	s.record(ctx, journal.Event{Action: journal.ActionClear, Count: len(book)})
	return len(book), nil
}

// record appends to the journal. The mutation is already saved, so a journal
// failure is logged and not returned.
func (s *Service) record(ctx context.Context, ev journal.Event) {
	if s.recorder == nil {
		return
	}
	if _, err := s.recorder.Append(ctx, ev); err != nil {
		slog.Warn("journal append failed", "action", ev.Action, "phone", ev.Phone, "error", err)
	}
}

// addedEntry finds the single key present in next but not in prev.
func addedEntry(prev, next contact.Book) contact.Entry {
	for phone, c := range next {
		if _, ok := prev[phone]; !ok {
			return contact.Entry{Phone: phone, Contact: c}
		}
	}
	return contact.Entry{}
}
