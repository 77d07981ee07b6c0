package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/roach88/contactsbook/internal/addressbook"
	"github.com/roach88/contactsbook/internal/contact"
)

// MenuCommand is one entry of the interactive main menu.
type MenuCommand int

const (
	MenuAdd MenuCommand = iota + 1
	MenuSearch
	MenuDelete
	MenuUpdate
	MenuList
	MenuClear
	MenuExit
)

// MenuCommands lists the main menu in display order.
var MenuCommands = []MenuCommand{MenuAdd, MenuSearch, MenuDelete, MenuUpdate, MenuList, MenuClear, MenuExit}

type menuLabel struct {
	icon  string
	title string
}

var menuLabels = map[MenuCommand]menuLabel{
	MenuAdd:    {iconAdd, "Add New Contact"},
	MenuSearch: {iconSearch, "Search For Contact"},
	MenuDelete: {iconDelete, "Delete Contact"},
	MenuUpdate: {iconUpdate, "Update Contact"},
	MenuList:   {iconList, "List Contacts"},
	MenuClear:  {iconClear, "Clear All Contacts"},
	MenuExit:   {iconExit, "Exit"},
}

func (c MenuCommand) String() string {
	if l, ok := menuLabels[c]; ok {
		return l.title
	}
	return fmt.Sprintf("MenuCommand(%d)", int(c))
}

// ParseMenuCommand maps the user's choice "1".."7" to a MenuCommand.
func ParseMenuCommand(s string) (MenuCommand, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err == nil {
		c := MenuCommand(n)
		if _, ok := menuLabels[c]; ok {
			return c, nil
		}
	}
	return 0, &contact.Error{
		Kind:    contact.KindInvalidSelection,
		Message: fmt.Sprintf("invalid choice %q: must be 1-%d", s, len(MenuCommands)),
	}
}

// menuActions dispatches every command except MenuExit, which ends the loop.
var menuActions = map[MenuCommand]func(*menu) error{
	MenuAdd:    (*menu).add,
	MenuSearch: (*menu).search,
	MenuDelete: (*menu).delete,
	MenuUpdate: (*menu).update,
	MenuList:   (*menu).list,
	MenuClear:  (*menu).clear,
}

// NewMenuCommand creates the menu command.
func NewMenuCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu",
		Long: `Run the numbered interactive menu on stdin and stdout.

The menu loops until "7" (Exit) is chosen or input ends. Invalid input is
reported and the menu is shown again.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootOpts.openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			m := newMenu(commandContext(cmd), s.svc, cmd.InOrStdin(), s.out.Writer, s.out.Styles())
			if err := m.run(); err != nil {
				return WrapExitError(ExitCommandError, "menu input failed", err)
			}
			return nil
		},
	}
}

// menu is the interactive shell. Every action reports its own failures and
// returns an error only when input can no longer be read.
type menu struct {
	ctx context.Context
	svc *addressbook.Service
	in  *bufio.Reader
	w   io.Writer
	s   Styles
}

func newMenu(ctx context.Context, svc *addressbook.Service, in io.Reader, w io.Writer, s Styles) *menu {
	return &menu{ctx: ctx, svc: svc, in: bufio.NewReader(in), w: w, s: s}
}

func (m *menu) run() error {
	m.banner()
	for {
		m.showMenu()
		choice, err := m.prompt(fmt.Sprintf("Enter a valid choice (1-%d): ", len(MenuCommands)))
		if err != nil {
			return m.finish(err)
		}
		cmd, err := ParseMenuCommand(choice)
		if err != nil {
			m.fail("Invalid choice %s try again.", dash)
			continue
		}
		if cmd == MenuExit {
			return m.finish(nil)
		}
		if err := menuActions[cmd](m); err != nil {
			return m.finish(err)
		}
	}
}

// finish prints the farewell. End of input is a normal exit.
func (m *menu) finish(err error) error {
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	fmt.Fprintln(m.w)
	fmt.Fprintln(m.w, rule("=", 45))
	m.ok("Thank you for using Contacts Book %s Bye!", dash)
	fmt.Fprintln(m.w, rule("=", 45))
	return nil
}

func (m *menu) banner() {
	fmt.Fprintln(m.w)
	fmt.Fprintln(m.w, rule("=", 48))
	fmt.Fprintln(m.w, m.s.Title.Width(48).Align(lipgloss.Center).Render("CONTACTS BOOK "+dash+" Simple CLI"))
	fmt.Fprintln(m.w, rule("=", 48))
}

func (m *menu) showMenu() {
	fmt.Fprintln(m.w)
	fmt.Fprintln(m.w, "----- Contact Book Menu -----")
	fmt.Fprintln(m.w)
	for _, c := range MenuCommands {
		l := menuLabels[c]
		fmt.Fprintf(m.w, "%d. %s  %s\n", int(c), l.icon, l.title)
	}
	fmt.Fprintln(m.w, "-----------------------------")
}

// prompt reads one trimmed line. A final line without a newline is returned
// normally; io.EOF is returned only when nothing is left.
func (m *menu) prompt(label string) (string, error) {
	fmt.Fprint(m.w, label)
	line, err := m.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *menu) ok(format string, args ...any) {
	fmt.Fprintln(m.w, m.s.OK.Render(iconOK+" "+fmt.Sprintf(format, args...)))
}

func (m *menu) warn(format string, args ...any) {
	fmt.Fprintln(m.w, m.s.Warn.Render(iconWarn+" "+fmt.Sprintf(format, args...)))
}

func (m *menu) fail(format string, args ...any) {
	fmt.Fprintln(m.w, m.s.Err.Render(iconFail+" "+fmt.Sprintf(format, args...)))
}

// report prints a failed operation's message.
func (m *menu) report(err error) {
	var ce *contact.Error
	if errors.As(err, &ce) {
		m.fail("%s", ce.Message)
		return
	}
	m.fail("%v", err)
}

func (m *menu) heading(icon, title string) {
	fmt.Fprintln(m.w)
	renderHeading(m.w, m.s, icon, title)
}

func (m *menu) add() error {
	m.heading(iconAdd, "Add New Contact")

	name, err := m.prompt("Name: ")
	if err != nil {
		return err
	}
	if name == "" {
		m.fail("Name required!")
		return nil
	}

	phone, err := m.prompt("Phone (10 digits): ")
	if err != nil {
		return err
	}
	switch {
	case phone == "":
		m.fail("Phone required!")
		return nil
	case !contact.IsValidPhone(phone):
		m.fail("Phone must be 10 digits only!")
		return nil
	}
	if found, _ := m.svc.Search(contact.ByPhone(phone)); len(found) > 0 {
		m.fail("Phone already exists!")
		return nil
	}

	email, err := m.prompt("Email (optional): ")
	if err != nil {
		return err
	}

	if _, err := m.svc.Add(m.ctx, name, phone, email); err != nil {
		m.report(err)
		return nil
	}
	m.ok("Contact added successfully!")
	return nil
}

// chooseField shows the phone/name/email/cancel submenu. ok is false when
// the user cancelled or chose badly; both are already reported.
func (m *menu) chooseField(action string) (contact.Field, bool, error) {
	for _, f := range contact.Fields {
		fmt.Fprintf(m.w, "%d) %s\n", int(f), contact.TitleCase(f.String()))
	}
	cancel := len(contact.Fields) + 1
	fmt.Fprintf(m.w, "%d) Cancel\n", cancel)
	fmt.Fprintln(m.w)

	choice, err := m.prompt(fmt.Sprintf("Choice (1-%d): ", cancel))
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(choice)
	switch {
	case convErr != nil || n < 1 || n > cancel:
		m.fail("Invalid choice!")
		return 0, false, nil
	case n == cancel:
		m.warn("%s cancelled.", action)
		return 0, false, nil
	}
	return contact.Field(n), true, nil
}

var queryPrompts = map[contact.Field]string{
	contact.FieldPhone: "Phone (10 digits): ",
	contact.FieldName:  "Name: ",
	contact.FieldEmail: "Email: ",
}

// find asks for a field and query and returns the matches. An empty result
// has already been reported.
func (m *menu) find(action string) ([]contact.Entry, error) {
	field, ok, err := m.chooseField(action)
	if err != nil || !ok {
		return nil, err
	}
	query, err := m.prompt(queryPrompts[field])
	if err != nil {
		return nil, err
	}

	matches, err := m.svc.Search(contact.Criterion{By: field, Query: query})
	if err != nil {
		m.report(err)
		return nil, nil
	}
	if len(matches) == 0 {
		m.fail("No contact found.")
	}
	return matches, nil
}

// selectOne asks which of several matches to act on.
func (m *menu) selectOne(matches []contact.Entry, verb string) (contact.Entry, bool, error) {
	answer, err := m.prompt(fmt.Sprintf("Select contact number to %s (1-%d): ", verb, len(matches)))
	if err != nil {
		return contact.Entry{}, false, err
	}
	n, convErr := strconv.Atoi(answer)
	if convErr != nil {
		m.fail("Please enter a valid number!")
		return contact.Entry{}, false, nil
	}
	e, err := contact.Select(matches, n)
	if err != nil {
		m.fail("Invalid selection!")
		return contact.Entry{}, false, nil
	}
	return e, true, nil
}

func (m *menu) search() error {
	m.heading(iconSearch, "Search Contacts")
	if m.svc.Count() == 0 {
		m.warn("No contacts to search.")
		return nil
	}

	matches, err := m.find("Search")
	if err != nil || len(matches) == 0 {
		return err
	}
	fmt.Fprintln(m.w)
	renderContacts(m.w, m.s, matches)
	return nil
}

func (m *menu) delete() error {
	m.heading(iconDelete, "Delete Contact")
	if m.svc.Count() == 0 {
		m.warn("No contacts to delete.")
		return nil
	}

	matches, err := m.find("Delete")
	if err != nil || len(matches) == 0 {
		return err
	}
	fmt.Fprintln(m.w)
	renderMatches(m.w, matches)
	fmt.Fprintln(m.w)

	target := matches[0]
	if len(matches) == 1 {
		answer, err := m.prompt("Delete this contact? (yes/no): ")
		if err != nil {
			return err
		}
		if strings.ToLower(answer) != "yes" {
			m.warn("Delete cancelled.")
			return nil
		}
	} else {
		var ok bool
		target, ok, err = m.selectOne(matches, "delete")
		if err != nil || !ok {
			return err
		}
	}

	if _, err := m.svc.Delete(m.ctx, target.Phone); err != nil {
		m.report(err)
		return nil
	}
	m.ok("Contact deleted.")
	return nil
}

var updatePrompts = map[contact.Field]string{
	contact.FieldPhone: "New phone (10 digits): ",
	contact.FieldName:  "New name: ",
	contact.FieldEmail: "New email (leave blank to clear): ",
}

func (m *menu) update() error {
	m.heading(iconUpdate, "Update Contact")
	if m.svc.Count() == 0 {
		m.warn("No contacts to update.")
		return nil
	}

	fmt.Fprintln(m.w, "Find contact by:")
	fmt.Fprintln(m.w, rule("-", 20))
	matches, err := m.find("Update")
	if err != nil || len(matches) == 0 {
		return err
	}

	target := matches[0]
	if len(matches) > 1 {
		fmt.Fprintln(m.w)
		renderMatches(m.w, matches)
		fmt.Fprintln(m.w)
		var ok bool
		target, ok, err = m.selectOne(matches, "update")
		if err != nil || !ok {
			return err
		}
	}

	fmt.Fprintln(m.w, rule("-", blockWidth))
	fmt.Fprintln(m.w, "Fields to update:")
	field, ok, err := m.chooseField("Update")
	if err != nil || !ok {
		return err
	}
	value, err := m.prompt(updatePrompts[field])
	if err != nil {
		return err
	}

	if _, err := m.svc.Update(m.ctx, target.Phone, field, value); err != nil {
		m.report(err)
		return nil
	}
	m.ok("Contact updated.")
	return nil
}

func (m *menu) list() error {
	fmt.Fprintln(m.w)
	renderList(m.w, m.s, m.svc.List())
	return nil
}

func (m *menu) clear() error {
	m.heading(iconClear, "Clear All Contacts")
	if m.svc.Count() == 0 {
		m.warn("No contacts to clear.")
		return nil
	}

	m.warn("WARNING: This will permanently delete ALL contacts!")
	answer, err := m.prompt("Type 'confirm' to delete everything, or anything else to cancel: ")
	if err != nil {
		return err
	}
	fmt.Fprintln(m.w)
	if strings.ToLower(answer) != "confirm" {
		m.warn("Clear cancelled.")
		return nil
	}

	if _, err := m.svc.Clear(m.ctx); err != nil {
		m.report(err)
		return nil
	}
	m.ok("All contacts removed.")
	return nil
}
