package contact

import (
	"fmt"
	"strings"
)

// Field names a contact attribute used for lookup and update.
type Field int

const (
	FieldPhone Field = iota + 1
	FieldName
	FieldEmail
)

var fieldNames = map[Field]string{
	FieldPhone: "phone",
	FieldName:  "name",
	FieldEmail: "email",
}

// Fields lists every field in menu order.
var Fields = []Field{FieldPhone, FieldName, FieldEmail}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// ParseField maps "phone", "name" or "email" (any case) to a Field.
func ParseField(s string) (Field, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, f := range Fields {
		if fieldNames[f] == want {
			return f, nil
		}
	}
	return 0, newError(KindInvalidSelection, "unknown field %q: must be one of phone, name, email", s)
}

// ParseCriterion builds a Criterion from a field name and query.
func ParseCriterion(by, query string) (Criterion, error) {
	field, err := ParseField(by)
	if err != nil {
		return Criterion{}, err
	}
	return Criterion{By: field, Query: query}, nil
}

// Criterion selects contacts by one field.
type Criterion struct {
	By    Field
	Query string
}

// ByPhone matches the contact keyed by an exact ten-digit phone.
func ByPhone(phone string) Criterion {
	return Criterion{By: FieldPhone, Query: phone}
}

// ByName matches names case-insensitively.
func ByName(name string) Criterion {
	return Criterion{By: FieldName, Query: name}
}

// ByEmail matches emails case-insensitively. The empty query matches
// contacts without an email.
func ByEmail(email string) Criterion {
	return Criterion{By: FieldEmail, Query: email}
}

func (c Criterion) String() string {
	return fmt.Sprintf("%s=%q", c.By, c.Query)
}
