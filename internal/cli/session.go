package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/contactsbook/internal/addressbook"
	"github.com/roach88/contactsbook/internal/config"
	"github.com/roach88/contactsbook/internal/journal"
	"github.com/roach88/contactsbook/internal/store"
)

// envFiles are read before the environment. Missing files are ignored.
var envFiles = []string{".env"}

// session is the per-invocation wiring of config, storage and output.
type session struct {
	cfg     *config.Config
	svc     *addressbook.Service
	journal *journal.Journal
	out     *OutputFormatter
}

// openSession resolves configuration, applies flag overrides and opens the
// contacts store and, when configured, the journal.
func (o *RootOptions) openSession(cmd *cobra.Command) (*session, error) {
	out := &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
	if out.Format == "" {
		out.Format = "text"
	}

	cfg, err := config.Load(config.LoadOptions{ConfigFile: o.ConfigFile, EnvFiles: envFiles})
	if err != nil {
		_ = out.Error(ErrCodeConfig, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}
	o.applyOverrides(cfg)
	out.Format = cfg.Output.Format

	// Configure logging based on config and verbose flag
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.Logger.SlogLevel(),
	})
	slog.SetDefault(slog.New(handler))

	st, err := store.NewFileStore(cfg.Store)
	if err != nil {
		_ = out.Error(ErrCodeConfig, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, "failed to open contacts file", err)
	}
	out.VerboseLog("contacts file: %s", st.Path())

	s := &session{cfg: cfg, out: out}
	var rec addressbook.Recorder
	if cfg.Journal.Enabled() {
		j, err := journal.Open(cfg.Journal.Path)
		if err != nil {
			_ = out.Error(ErrCodeConfig, err.Error(), nil)
			return nil, WrapExitError(ExitCommandError, "failed to open journal", err)
		}
		out.VerboseLog("journal: %s", cfg.Journal.Path)
		s.journal = j
		rec = j
	}
	s.svc = addressbook.New(st, rec)
	return s, nil
}

func (o *RootOptions) applyOverrides(cfg *config.Config) {
	if o.File != "" {
		cfg.Store.Path = o.File
	}
	if o.Journal != "" {
		cfg.Journal.Path = o.Journal
	}
	if o.Format != "" {
		cfg.Output.Format = o.Format
	}
	if o.Verbose {
		cfg.Logger.Level = "debug"
	}
}

// Close releases the journal, if open.
func (s *session) Close() {
	if s.journal == nil {
		return
	}
	if err := s.journal.Close(); err != nil {
		slog.Error("error closing journal", "error", err)
	}
}

// commandContext returns the command's context, or Background when the
// command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
