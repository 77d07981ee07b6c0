package cli

import (
	"github.com/spf13/cobra"
)

// DeleteOptions holds flags for the delete command.
type DeleteOptions struct {
	*RootOptions
	MatchOptions
	Yes bool
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeleteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a contact",
		Long: `Find a contact and delete it.

A single match is deleted only with --yes. When several contacts match, the
matches are listed and --select picks one of them.

Example:
  contactsbook delete --by phone --query 5551234567 --yes
  contactsbook delete --by name --query "john doe" --select 2`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(opts, cmd)
		},
	}

	opts.bindLookupFlags(cmd)
	opts.bindSelectFlag(cmd)
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "confirm deleting a single match")

	return cmd
}

func runDelete(opts *DeleteOptions, cmd *cobra.Command) error {
	s, err := opts.openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	matches, err := opts.findMatches(s)
	if err != nil {
		return s.out.Fail(err)
	}
	target, err := opts.pick(s, matches)
	if err != nil {
		return s.out.Fail(err)
	}
	if len(matches) == 1 && !opts.Yes {
		if !s.out.Structured() {
			renderMatches(s.out.Writer, matches)
		}
		return s.out.FailCode(ExitFailure, ErrCodeUnconfirmed, "delete not confirmed; pass --yes")
	}

	removed, err := s.svc.Delete(commandContext(cmd), target.Phone)
	if err != nil {
		return s.out.Fail(err)
	}

	if s.out.Structured() {
		return s.out.Success(removed)
	}
	s.out.OK("Contact deleted.")
	return nil
}
