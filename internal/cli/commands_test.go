package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/contactsbook/internal/config"
	"github.com/roach88/contactsbook/internal/contact"
	"github.com/roach88/contactsbook/internal/store"
)

// testEnv isolates one CLI invocation sequence in a temp directory.
type testEnv struct {
	file    string
	journal string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	for _, key := range []string{"CONTACTSBOOK_FILE", "CONTACTSBOOK_JOURNAL", "CONTACTSBOOK_FORMAT", "CONTACTSBOOK_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	dir := t.TempDir()
	return &testEnv{
		file:    filepath.Join(dir, "contacts.json"),
		journal: filepath.Join(dir, "journal.db"),
	}
}

// run executes the root command with the env's file and journal.
func (e *testEnv) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return e.runRaw(t, stdin, append([]string{"--file", e.file, "--journal", e.journal}, args...)...)
}

func (e *testEnv) runRaw(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func (e *testEnv) book(t *testing.T) contact.Book {
	t.Helper()
	st, err := store.NewFileStore(config.StoreConfig{Path: e.file})
	require.NoError(t, err)
	return st.Load()
}

func (e *testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, "", args...)
	require.NoError(t, err, "output:\n%s", out)
	return out
}

func decodeResponse(t *testing.T, out string) CLIResponse {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), "output:\n%s", out)
	return resp
}

func TestCLI_AddSearchUpdateDelete(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "add", "--name", "  john doe ", "--phone", "5551234567")
	assert.Contains(t, out, "Contact added successfully!")
	assert.Equal(t, contact.Book{"5551234567": {Name: "John Doe"}}, env.book(t))

	out = env.mustRun(t, "--format", "json", "search", "--by", "name", "--query", "JOHN DOE")
	resp := decodeResponse(t, out)
	assert.Equal(t, "ok", resp.Status)
	assert.Contains(t, out, `"phone":"5551234567"`)

	env.mustRun(t, "update", "--by", "phone", "--query", "5551234567", "--field", "phone", "--value", "5550000000")
	env.mustRun(t, "update", "--by", "phone", "--query", "5550000000", "--field", "email", "--value", "john@doe.com")
	assert.Equal(t, contact.Book{"5550000000": {Name: "John Doe", Email: "john@doe.com"}}, env.book(t))

	out = env.mustRun(t, "delete", "--by", "email", "--query", "JOHN@DOE.COM", "--yes")
	assert.Contains(t, out, "Contact deleted.")
	assert.Empty(t, env.book(t))
}

func TestCLI_AddValidationFailure(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "", "add", "--name", "John", "--phone", "12345")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [INVALID_PHONE]")
	assert.Empty(t, env.book(t))
}

func TestCLI_AddDuplicateJSON(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "add", "--name", "John", "--phone", "5551234567")

	out, err := env.run(t, "", "--format", "json", "add", "--name", "Other", "--phone", "5551234567")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	resp := decodeResponse(t, out)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "DUPLICATE_PHONE", resp.Error.Code)
}

func TestCLI_SearchNoMatch(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "", "search", "--by", "name", "--query", "nobody")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [NOT_FOUND]")
}

func TestCLI_SearchUnknownField(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "", "search", "--by", "address", "--query", "x")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [INVALID_SELECTION]")
}

func TestCLI_DeleteRequiresConfirmation(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "add", "--name", "John", "--phone", "5551234567")

	out, err := env.run(t, "", "delete", "--query", "5551234567")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error ["+ErrCodeUnconfirmed+"]")
	assert.Len(t, env.book(t), 1)
}

func TestCLI_DeleteAmbiguousNeedsSelect(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "add", "--name", "John Doe", "--phone", "5550000002")
	env.mustRun(t, "add", "--name", "john doe", "--phone", "5550000001")

	out, err := env.run(t, "", "delete", "--by", "name", "--query", "john doe")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "[1] John Doe — 5550000001")
	assert.Contains(t, out, "[2] John Doe — 5550000002")
	assert.Contains(t, out, "--select 1-2")
	assert.Len(t, env.book(t), 2)

	env.mustRun(t, "delete", "--by", "name", "--query", "john doe", "--select", "2")
	assert.Equal(t, contact.Book{"5550000001": {Name: "John Doe"}}, env.book(t))

	_, err = env.run(t, "", "delete", "--by", "name", "--query", "john doe", "--select", "5")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestCLI_UpdateRequiresField(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "", "update", "--query", "5551234567", "--value", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestCLI_UpdateInvalidEmail(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "add", "--name", "John", "--phone", "5551234567")

	out, err := env.run(t, "", "update", "--query", "5551234567", "--field", "email", "--value", "not-an-email")
	require.Error(t, err)
	assert.Contains(t, out, "Error [INVALID_EMAIL]")
	assert.Equal(t, contact.Book{"5551234567": {Name: "John"}}, env.book(t))
}

func TestCLI_ListJSONSortedByName(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "add", "--name", "bob", "--phone", "5550000001")
	env.mustRun(t, "add", "--name", "alice", "--phone", "5550000002")

	out := env.mustRun(t, "--format", "json", "list")

	var resp struct {
		Status string          `json:"status"`
		Data   []contact.Entry `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Alice", resp.Data[0].Name)
	assert.Equal(t, "Bob", resp.Data[1].Name)
}

func TestCLI_ListEmpty(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "list")
	assert.Contains(t, out, "No contacts found. Add your first contact!")
}

func TestCLI_Clear(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "add", "--name", "John", "--phone", "5551234567")
	env.mustRun(t, "add", "--name", "Jane", "--phone", "5557654321")

	out, err := env.run(t, "", "clear")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "WARNING")
	assert.Len(t, env.book(t), 2)

	out = env.mustRun(t, "--format", "yaml", "clear", "--confirm")
	assert.Contains(t, out, "removed: 2")
	assert.Empty(t, env.book(t))
}

func TestCLI_ClearEmptyBook(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "clear")
	assert.Contains(t, out, "No contacts to clear.")
}

func TestCLI_History(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "add", "--name", "John", "--phone", "5551234567")
	env.mustRun(t, "add", "--name", "Jane", "--phone", "5557654321")
	env.mustRun(t, "update", "--query", "5551234567", "--field", "name", "--value", "johnny")

	out := env.mustRun(t, "history")
	assert.Contains(t, out, `5551234567 name: "John" -> "Johnny"`)

	out = env.mustRun(t, "--format", "json", "history", "--phone", "5551234567")
	var resp struct {
		Data []struct {
			Action string `json:"action"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "add", resp.Data[0].Action)
	assert.Equal(t, "update", resp.Data[1].Action)
}

func TestCLI_HistoryDisabledWithoutJournal(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runRaw(t, "", "--file", env.file, "history")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error ["+ErrCodeJournalDisabled+"]")
}

func TestCLI_FormatFromEnvironment(t *testing.T) {
	env := newTestEnv(t)
	t.Setenv("CONTACTSBOOK_FORMAT", "json")

	out := env.mustRun(t, "list")
	resp := decodeResponse(t, out)
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_InvalidConfigIsCommandError(t *testing.T) {
	env := newTestEnv(t)
	t.Setenv("CONTACTSBOOK_LOG_LEVEL", "chatty")

	out, err := env.run(t, "", "list")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error ["+ErrCodeConfig+"]")
}
