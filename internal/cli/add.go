package cli

import (
	"github.com/spf13/cobra"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Name  string
	Phone string
	Email string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new contact",
		Long: `Add a contact keyed by its phone number.

The name is trimmed and title-cased. The phone must be exactly ten digits and
not already in the book. The email is optional.

Example:
  contactsbook add --name "john doe" --phone 5551234567
  contactsbook add --name "Jane Roe" --phone 5559876543 --email jane@roe.com`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "contact name")
	cmd.Flags().StringVar(&opts.Phone, "phone", "", "ten-digit phone number")
	cmd.Flags().StringVar(&opts.Email, "email", "", "email address (optional)")

	return cmd
}

func runAdd(opts *AddOptions, cmd *cobra.Command) error {
	s, err := opts.openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	entry, err := s.svc.Add(commandContext(cmd), opts.Name, opts.Phone, opts.Email)
	if err != nil {
		return s.out.Fail(err)
	}

	if s.out.Structured() {
		return s.out.Success(entry)
	}
	s.out.OK("Contact added successfully!")
	return nil
}
