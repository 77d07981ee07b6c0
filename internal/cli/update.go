package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/contactsbook/internal/contact"
)

// UpdateOptions holds flags for the update command.
type UpdateOptions struct {
	*RootOptions
	MatchOptions
	Field string
	Value string
}

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &UpdateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update one field of a contact",
		Long: `Find a contact and change its phone, name or email.

Changing the phone moves the contact to the new number. An empty email value
clears the email. When several contacts match, --select picks one.

Example:
  contactsbook update --by phone --query 5551234567 --field email --value john@doe.com
  contactsbook update --by name --query "john doe" --field phone --value 5550000000`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(opts, cmd)
		},
	}

	opts.bindLookupFlags(cmd)
	opts.bindSelectFlag(cmd)
	cmd.Flags().StringVar(&opts.Field, "field", "", "field to change (phone|name|email)")
	cmd.Flags().StringVar(&opts.Value, "value", "", "new value")
	_ = cmd.MarkFlagRequired("field")

	return cmd
}

func runUpdate(opts *UpdateOptions, cmd *cobra.Command) error {
	s, err := opts.openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	field, err := contact.ParseField(opts.Field)
	if err != nil {
		return s.out.Fail(err)
	}
	matches, err := opts.findMatches(s)
	if err != nil {
		return s.out.Fail(err)
	}
	target, err := opts.pick(s, matches)
	if err != nil {
		return s.out.Fail(err)
	}

	updated, err := s.svc.Update(commandContext(cmd), target.Phone, field, opts.Value)
	if err != nil {
		return s.out.Fail(err)
	}

	if s.out.Structured() {
		return s.out.Success(updated)
	}
	s.out.OK("Contact updated.")
	return nil
}
