// Package cli is the parley command line: the API server plus the operator
// commands for managing users and API keys directly against the database.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parleyhq/parley/internal/app"
	"github.com/parleyhq/parley/internal/store"
	"github.com/parleyhq/parley/internal/store/drivers/sqlite"
	"github.com/parleyhq/parley/pkg/cryptox"
)

// Execute creates the root command tree and runs it.
func Execute(version, commit, date string) error {
	rootCmd := newRootCmd(version, commit, date)
	return rootCmd.Execute()
}

func newRootCmd(version, commit, date string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parley",
		Short: "Messaging and CRM backend for small teams",
		Long: `Parley is a messaging/CRM backend. It serves a JSON API authenticated
with short-lived session tokens or long-lived scoped API keys.

There is no open registration: the first admin account is created here,
on the host, with 'parley user create --role admin'. Everything else can
be done over the API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newUserCmd())
	cmd.AddCommand(newKeyCmd())
	cmd.AddCommand(newVersionCmd(version, commit, date))

	return cmd
}

// openStore opens the configured database for operator commands. The server
// and the CLI share the file; WAL mode plus the busy timeout keeps concurrent
// access safe.
func openStore() (store.Store, error) {
	cfg, err := app.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cryptox.SetPepperPath(cfg.PepperFile)

	host := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.DatabaseFile)
	st, err := sqlite.NewStore(host)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := st.ApplyMigrations(); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return st, nil
}
