package store

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/contactsbook/internal/contact"
)

func TestLoad_MissingFile(t *testing.T) {
	s := createTestStore(t)

	book := s.Load()
	assert.NotNil(t, book)
	assert.Empty(t, book)
}

func TestLoad_DegradesToEmpty(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"whitespace", "  \n\t"},
		{"null", "null"},
		{"invalid syntax", `{"5551234567": {"name": "John"`},
		{"list instead of mapping", `[{"name": "John"}]`},
		{"string", `"contacts"`},
		{"number", `42`},
		{"values not objects", `{"5551234567": "John"}`},
		{"trailing garbage", `{} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := createTestStore(t)
			require.NoError(t, os.WriteFile(s.Path(), []byte(tt.content), 0o644))

			book := s.Load()
			assert.NotNil(t, book)
			assert.Empty(t, book)
		})
	}
}

func TestLoad_UnreadablePath(t *testing.T) {
	s := createTestStore(t)
	// A directory at the file path cannot be read as a file.
	require.NoError(t, os.Mkdir(s.Path(), 0o755))

	assert.Empty(t, s.Load())
}

func TestLoad_ExistingFile(t *testing.T) {
	s := createTestStore(t)
	content := `{
    "5551234567": {
        "name": "John Doe",
        "email": ""
    },
    "5559876543": {
        "name": "José Núñez",
        "email": "jose@example.es"
    }
}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0o644))

	book := s.Load()
	assert.Equal(t, contact.Book{
		"5551234567": {Name: "John Doe", Email: ""},
		"5559876543": {Name: "José Núñez", Email: "jose@example.es"},
	}, book)
}

func TestLoad_MissingAndNullFields(t *testing.T) {
	s := createTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"5551234567": {"name": "John", "email": null}, "5550000000": {}}`), 0o644))

	book := s.Load()
	assert.Equal(t, contact.Contact{Name: "John"}, book["5551234567"])
	assert.Equal(t, contact.Contact{}, book["5550000000"])
}
