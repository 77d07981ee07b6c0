package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/roach88/contactsbook/internal/contact"
	"github.com/roach88/contactsbook/internal/journal"
)

const (
	iconAdd    = "➕"
	iconSearch = "🔎"
	iconDelete = "🗑️"
	iconUpdate = "✏️"
	iconList   = "📋"
	iconClear  = "⚠️"
	iconExit   = "✅"
	iconOK     = "✔️"
	iconFail   = "❌"
	iconEmail  = "✉️"
	iconPhone  = "📞"
	iconUser   = "👤"
	iconWarn   = "🚨"
)

const (
	blockWidth = 36
	matchWidth = 40
	dash       = "—"
	noEmail    = dash
)

// Styles groups the lipgloss styles used for text output.
type Styles struct {
	Title lipgloss.Style
	OK    lipgloss.Style
	Warn  lipgloss.Style
	Err   lipgloss.Style
	Name  lipgloss.Style
	Muted lipgloss.Style
}

// NewStyles builds styles for r. A renderer bound to a non-terminal writer
// renders every style as plain text.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().Bold(true),
		OK:    r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Warn:  r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Err:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Name:  r.NewStyle().Bold(true),
		Muted: r.NewStyle().Faint(true),
	}
}

func rule(ch string, width int) string {
	return strings.Repeat(ch, width)
}

// renderHeading prints a section title followed by a dashed rule.
func renderHeading(w io.Writer, s Styles, icon, title string) {
	fmt.Fprintln(w, s.Title.Render(icon+"  "+title))
	fmt.Fprintln(w, rule("-", blockWidth))
}

// renderContact prints one numbered contact block.
func renderContact(w io.Writer, s Styles, index int, e contact.Entry) {
	email := e.Email
	if email == "" {
		email = noEmail
	}
	fmt.Fprintln(w, rule("=", blockWidth))
	fmt.Fprintf(w, "[%d] %s %s\n", index, iconUser, s.Name.Render(e.Name))
	fmt.Fprintf(w, "    %s Phone: %s\n", iconPhone, e.Phone)
	fmt.Fprintf(w, "    %s  Email: %s\n", iconEmail, email)
	fmt.Fprintln(w, rule("-", blockWidth))
}

// renderContacts prints every entry as a numbered block.
func renderContacts(w io.Writer, s Styles, entries []contact.Entry) {
	for i, e := range entries {
		renderContact(w, s, i+1, e)
	}
}

// renderList prints the full sorted listing with its footer.
func renderList(w io.Writer, s Styles, entries []contact.Entry) {
	renderHeading(w, s, iconList, "Contact List")
	if len(entries) == 0 {
		fmt.Fprintln(w, s.Warn.Render(iconWarn+" No contacts found. Add your first contact!"))
		return
	}
	renderContacts(w, s, entries)
	fmt.Fprintln(w, s.OK.Render(fmt.Sprintf("%s End of list %s Total: %d", iconOK, dash, len(entries))))
}

// renderMatches prints the compact numbered list shown before a selection.
func renderMatches(w io.Writer, entries []contact.Entry) {
	fmt.Fprintln(w, rule("=", matchWidth))
	for i, e := range entries {
		fmt.Fprintf(w, "[%d] %s %s %s\n", i+1, e.Name, dash, e.Phone)
	}
	fmt.Fprintln(w, rule("=", matchWidth))
}

// renderEvents prints journal events one per line.
func renderEvents(w io.Writer, s Styles, events []journal.Event) {
	if len(events) == 0 {
		fmt.Fprintln(w, s.Warn.Render(iconWarn+" No history recorded."))
		return
	}
	for _, ev := range events {
		fmt.Fprintf(w, "%4d  %s  %-6s  %s\n",
			ev.Seq,
			s.Muted.Render(ev.RecordedAt.UTC().Format("2006-01-02 15:04:05")),
			ev.Action,
			describeEvent(ev))
	}
}

func describeEvent(ev journal.Event) string {
	switch ev.Action {
	case journal.ActionAdd:
		if ev.After != nil {
			return fmt.Sprintf("%s %s", ev.After.Phone, ev.After.Name)
		}
	case journal.ActionDelete:
		if ev.Before != nil {
			return fmt.Sprintf("%s %s", ev.Before.Phone, ev.Before.Name)
		}
	case journal.ActionUpdate:
		if ev.Before != nil && ev.After != nil {
			return fmt.Sprintf("%s %s: %q -> %q", ev.Phone, ev.Field,
				fieldValue(*ev.Before, ev.Field), fieldValue(*ev.After, ev.Field))
		}
	case journal.ActionClear:
		return fmt.Sprintf("%d contacts removed", ev.Count)
	}
	return ev.Phone
}

func fieldValue(e contact.Entry, field string) string {
	switch field {
	case "phone":
		return e.Phone
	case "name":
		return e.Name
	default:
		return e.Email
	}
}
