package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mkoppen/ceilgrid/internal/config"
	"github.com/mkoppen/ceilgrid/internal/server"
)

func newServeCmd(loadConfig func(context.Context) config.Config) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout engine as a JSON HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := loadConfig(ctx)
			if cmd.Flags().Changed("addr") {
				cfg.ListenAddr = addr
			}
			return server.New(cfg, loggerFromContext(ctx)).Run()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
