package cli

import (
	"github.com/spf13/cobra"
)

// ClearOptions holds flags for the clear command.
type ClearOptions struct {
	*RootOptions
	Confirm bool
}

// ClearResult is the structured payload of the clear command.
type ClearResult struct {
	Removed int `json:"removed" yaml:"removed"`
}

// NewClearCommand creates the clear command.
func NewClearCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ClearOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete ALL contacts",
		Long: `Permanently delete every contact. Requires --confirm.

Example:
  contactsbook clear --confirm`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClear(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Confirm, "confirm", false, "confirm deleting every contact")

	return cmd
}

func runClear(opts *ClearOptions, cmd *cobra.Command) error {
	s, err := opts.openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if s.svc.Count() == 0 {
		s.out.Warn("No contacts to clear.")
		if s.out.Structured() {
			return s.out.Success(ClearResult{})
		}
		return nil
	}
	if !opts.Confirm {
		s.out.Warn("WARNING: This will permanently delete ALL contacts!")
		return s.out.FailCode(ExitFailure, ErrCodeUnconfirmed, "clear not confirmed; pass --confirm")
	}

	n, err := s.svc.Clear(commandContext(cmd))
	if err != nil {
		return s.out.Fail(err)
	}

	if s.out.Structured() {
		return s.out.Success(ClearResult{Removed: n})
	}
	s.out.OK("All contacts removed (%d).", n)
	return nil
}
