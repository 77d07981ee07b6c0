package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/contactsbook/internal/contact"
)

// MatchOptions are the lookup flags shared by search, delete and update.
type MatchOptions struct {
	By     string
	Query  string
	Select int
}

func (m *MatchOptions) bindLookupFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&m.By, "by", "phone", "field to search by (phone|name|email)")
	cmd.Flags().StringVar(&m.Query, "query", "", "value to match; an empty email query matches contacts without email")
}

func (m *MatchOptions) bindSelectFlag(cmd *cobra.Command) {
	cmd.Flags().IntVar(&m.Select, "select", 0, "1-based index when several contacts match")
}

// findMatches runs the lookup and treats an empty result as NotFound.
func (m *MatchOptions) findMatches(s *session) ([]contact.Entry, error) {
	c, err := contact.ParseCriterion(m.By, m.Query)
	if err != nil {
		return nil, err
	}
	matches, err := s.svc.Search(c)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, contact.NoMatch(c)
	}
	return matches, nil
}

// pick resolves matches to one entry. Several matches need --select.
func (m *MatchOptions) pick(s *session, matches []contact.Entry) (contact.Entry, error) {
	if len(matches) == 1 && m.Select == 0 {
		return matches[0], nil
	}
	if m.Select == 0 {
		var details interface{}
		if s.out.Structured() {
			details = matches
		} else {
			renderMatches(s.out.Writer, matches)
		}
		msg := fmt.Sprintf("%d contacts match; choose one with --select 1-%d", len(matches), len(matches))
		_ = s.out.Error(string(contact.KindInvalidSelection), msg, details)
		return contact.Entry{}, NewExitError(ExitFailure, msg)
	}
	return contact.Select(matches, m.Select)
}
