package contact

import (
	"sort"
	"strings"
)

// Add inserts a new contact keyed by phone.
//
// Checks run in this order: EmptyName, EmptyPhone, InvalidPhone,
// DuplicatePhone, InvalidEmail. The stored name is the trimmed input
// title-cased.
func Add(book Book, name, phone, email string) (Book, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	email = strings.TrimSpace(email)

	if name == "" {
		return book, newError(KindEmptyName, "name required")
	}
	if err := checkPhone(phone); err != nil {
		return book, err
	}
	if _, exists := book[phone]; exists {
		return book, newError(KindDuplicatePhone, "phone %s already exists", phone)
	}
	if !IsValidEmail(email) {
		return book, newError(KindInvalidEmail, "invalid email format %q", email)
	}

	out := book.Clone()
	out[phone] = Contact{Name: normalizeName(name), Email: email}
	return out, nil
}

// Find returns every contact matching the criterion, ordered by phone.
//
// The query itself is validated first: a phone query must be ten digits, a
// name query must be non-blank and an email query must be empty or well
// formed. An invalid query is an error, not an empty result.
func Find(book Book, c Criterion) ([]Entry, error) {
	query := strings.TrimSpace(c.Query)

	var match func(phone string, ct Contact) bool
	switch c.By {
	case FieldPhone:
		if !IsValidPhone(query) {
			return nil, newError(KindInvalidPhone, "invalid phone %q", query)
		}
		match = func(phone string, _ Contact) bool { return phone == query }
	case FieldName:
		if query == "" {
			return nil, newError(KindEmptyName, "name required")
		}
		match = func(_ string, ct Contact) bool { return strings.EqualFold(ct.Name, query) }
	case FieldEmail:
		query = strings.ToLower(query)
		if !IsValidEmail(query) {
			return nil, newError(KindInvalidEmail, "invalid email %q", query)
		}
		match = func(_ string, ct Contact) bool { return strings.ToLower(ct.Email) == query }
	default:
		return nil, newError(KindInvalidSelection, "unknown search field %s", c.By)
	}

	entries := make([]Entry, 0)
	for phone, ct := range book {
		if match(phone, ct) {
			entries = append(entries, Entry{Phone: phone, Contact: ct})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Phone < entries[j].Phone })
	return entries, nil
}

// ListSorted returns all contacts ordered by case-insensitive name. Equal
// names keep phone order.
func ListSorted(book Book) []Entry {
	entries := make([]Entry, 0, len(book))
	for phone, ct := range book {
		entries = append(entries, Entry{Phone: phone, Contact: ct})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Phone < entries[j].Phone })
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
	return entries
}

// Delete removes the contact keyed by phone.
func Delete(book Book, phone string) (Book, error) {
	if _, ok := book[phone]; !ok {
		return book, newError(KindNotFound, "no contact with phone %q", phone)
	}
	out := book.Clone()
	delete(out, phone)
	return out, nil
}

// Update changes one field of the contact keyed by phone.
//
// Updating the phone re-keys the entry; setting it to its current value is a
// no-op. Updating the name title-cases it. Updating the email stores the
// trimmed value verbatim, and the empty string clears it.
func Update(book Book, phone string, field Field, value string) (Book, error) {
	current, ok := book[phone]
	if !ok {
		return book, newError(KindNotFound, "no contact with phone %q", phone)
	}
	value = strings.TrimSpace(value)

	out := book.Clone()
	switch field {
	case FieldPhone:
		if err := checkPhone(value); err != nil {
			return book, err
		}
		if value == phone {
			return out, nil
		}
		if _, taken := book[value]; taken {
			return book, newError(KindDuplicatePhone, "phone %s already exists", value)
		}
		delete(out, phone)
		out[value] = current
	case FieldName:
		if value == "" {
			return book, newError(KindEmptyName, "name required")
		}
		current.Name = normalizeName(value)
		out[phone] = current
	case FieldEmail:
		if !IsValidEmail(value) {
			return book, newError(KindInvalidEmail, "invalid email format %q", value)
		}
		current.Email = value
		out[phone] = current
	default:
		return book, newError(KindInvalidSelection, "unknown field %s", field)
	}
	return out, nil
}

// ClearAll returns an empty book. Confirmation is the caller's job.
func ClearAll(Book) Book {
	return Book{}
}

// Select picks the n-th (1-based) entry from a list of matches.
func Select(entries []Entry, n int) (Entry, error) {
	if n < 1 || n > len(entries) {
		return Entry{}, newError(KindInvalidSelection, "selection %d out of range 1-%d", n, len(entries))
	}
	return entries[n-1], nil
}

func checkPhone(phone string) error {
	if phone == "" {
		return newError(KindEmptyPhone, "phone required")
	}
	if !IsValidPhone(phone) {
		return newError(KindInvalidPhone, "phone must be 10 digits only, got %q", phone)
	}
	return nil
}
