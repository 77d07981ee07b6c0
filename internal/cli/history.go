package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/contactsbook/internal/journal"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Phone string
	Limit int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the journal of contact changes",
		Long: `Show recorded adds, updates, deletes and clears, oldest first.

History is kept only when a journal is configured with --journal or
CONTACTSBOOK_JOURNAL.

Example:
  contactsbook --journal ./contacts.db history
  contactsbook --journal ./contacts.db history --phone 5551234567 --limit 10`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Phone, "phone", "", "only events touching this phone")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "show at most N most recent events (0 = all)")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	s, err := opts.openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if s.journal == nil {
		return s.out.FailCode(ExitCommandError, ErrCodeJournalDisabled,
			"history is disabled; set --journal or CONTACTSBOOK_JOURNAL")
	}

	events, err := s.journal.Events(commandContext(cmd), journal.Filter{Phone: opts.Phone, Limit: opts.Limit})
	if err != nil {
		return s.out.Fail(err)
	}

	if s.out.Structured() {
		return s.out.Success(events)
	}
	renderEvents(s.out.Writer, s.out.Styles(), events)
	return nil
}
