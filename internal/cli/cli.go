// Package cli implements the ceilgrid command-line interface.
//
// Commands:
//   - compute: search for the optimal panel layout of a ceiling
//   - compare: run what-if scenarios side by side
//   - serve:   expose the engine as a JSON HTTP API
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mkoppen/ceilgrid/internal/config"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version,
// typically injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the ceilgrid CLI and returns an error if any command fails.
func Execute() error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "ceilgrid",
		Short:        "ceilgrid computes optimal ceiling panel layouts",
		Long:         `ceilgrid subdivides a rectangular ceiling into a grid of equal panels, honoring perimeter and inter-panel gaps, and ranks candidate grids under a selectable scoring strategy.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("ceilgrid %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "path to the config file")

	loadConfig := func(ctx context.Context) config.Config {
		cfg, err := config.Load(configPath)
		if err != nil {
			loggerFromContext(ctx).Warnf("Ignoring unreadable config %s: %v", configPath, err)
			return config.Default()
		}
		return cfg
	}

	root.AddCommand(newComputeCmd(loadConfig))
	root.AddCommand(newCompareCmd(loadConfig))
	root.AddCommand(newServeCmd(loadConfig))

	return root.ExecuteContext(context.Background())
}
