package cli

import (
	"github.com/spf13/cobra"
)

// SearchOptions holds flags for the search command.
type SearchOptions struct {
	*RootOptions
	MatchOptions
}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SearchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search contacts by phone, name or email",
		Long: `Search contacts by one field.

Phone matches exactly and must be ten digits. Name and email match
case-insensitively. An empty email query finds contacts without an email.

Example:
  contactsbook search --by phone --query 5551234567
  contactsbook search --by name --query "john doe"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(opts, cmd)
		},
	}

	opts.bindLookupFlags(cmd)

	return cmd
}

func runSearch(opts *SearchOptions, cmd *cobra.Command) error {
	s, err := opts.openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	matches, err := opts.findMatches(s)
	if err != nil {
		return s.out.Fail(err)
	}

	if s.out.Structured() {
		return s.out.Success(matches)
	}
	renderContacts(s.out.Writer, s.out.Styles(), matches)
	return nil
}
