package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/contactsbook/internal/config"
	"github.com/roach88/contactsbook/internal/contact"
)

func TestSave_ThenLoadRoundTrip(t *testing.T) {
	s := createTestStore(t)
	book := contact.Book{
		"1111111111": {Name: "Bob", Email: "bob@example.com"},
		"2222222222": {Name: "Alice <Admin>", Email: ""},
		"3333333333": {Name: "Zoë", Email: "zoe@example.fr"},
	}

	require.NoError(t, s.Save(book))

	if diff := cmp.Diff(book, s.Load()); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestSave_Idempotent(t *testing.T) {
	s := createTestStore(t)
	book := contact.Book{"5551234567": {Name: "John Doe"}}

	require.NoError(t, s.Save(book))
	first, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	require.NoError(t, s.Save(s.Load()))
	second, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestSave_FileLayout(t *testing.T) {
	s := createTestStore(t)
	require.NoError(t, s.Save(contact.Book{
		"5559876543": {Name: "Zoë <Z>", Email: "z@example.com"},
		"5551234567": {Name: "John Doe", Email: ""},
	}))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	want := `{
    "5551234567": {
        "name": "John Doe",
        "email": ""
    },
    "5559876543": {
        "name": "Zoë <Z>",
        "email": "z@example.com"
    }
}
`
	assert.Equal(t, want, string(data))
}

func TestSave_EmptyAndNilBook(t *testing.T) {
	s := createTestStore(t)

	require.NoError(t, s.Save(nil))
	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))

	require.NoError(t, s.Save(contact.Book{}))
	assert.Empty(t, s.Load())
}

func TestSave_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "contacts.json")
	s, err := NewFileStore(config.StoreConfig{Path: path})
	require.NoError(t, err)

	require.NoError(t, s.Save(contact.Book{"5551234567": {Name: "John"}}))
	assert.FileExists(t, path)
}

func TestSave_SetsPermissions(t *testing.T) {
	s := createTestStore(t)
	require.NoError(t, s.Save(contact.Book{}))

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerm), info.Mode().Perm())
}

func TestSave_FailureLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "contacts.json")
	// Renaming a file over a non-empty directory fails on every platform.
	require.NoError(t, os.MkdirAll(filepath.Join(target, "keep"), 0o755))

	s, err := NewFileStore(config.StoreConfig{Path: target})
	require.NoError(t, err)

	err = s.Save(contact.Book{"5551234567": {Name: "John"}})
	require.Error(t, err)
	assert.True(t, contact.IsKind(err, contact.KindIO))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file must be removed")
	assert.Equal(t, "contacts.json", entries[0].Name())
	assert.DirExists(t, filepath.Join(target, "keep"))
}

func TestSave_ReplacesExistingFile(t *testing.T) {
	s := createTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("not json at all"), 0o644))
	assert.Empty(t, s.Load())

	require.NoError(t, s.Save(contact.Book{"5551234567": {Name: "John"}}))
	assert.Len(t, s.Load(), 1)
}
