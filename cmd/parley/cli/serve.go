package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parleyhq/parley/internal/app"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the Parley API server",
		Long:  "Start the HTTP server. Configuration comes from the environment; see the README for the PARLEY_* variables.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			application, err := app.New(cfg)
			if err != nil {
				return fmt.Errorf("initialize application: %w", err)
			}

			return application.Run()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "HTTP listen port (overrides PORT)")

	return cmd
}
