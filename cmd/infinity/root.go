package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/infinity/internal/cli"
	"github.com/katalvlaran/infinity/internal/config"
	"github.com/katalvlaran/infinity/internal/logging"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "infinity",
		Short: "Solutions to Advent of Code 2016 puzzles",
		Long: `infinity solves the 2016 path puzzles: taxicab distances from turn-and-walk
instructions (day 1) and bathroom codes on configurable keypads (day 2).
Without a subcommand it starts the interactive launcher.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLauncher(cmd)
			if err != nil {
				return err
			}
			return l.Run(cmd.Context())
		},
	}

	root.PersistentFlags().String("config", "", "YAML file with extra keypad layouts and settings (default $XDG_CONFIG_HOME/infinity/config.yaml when present)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (overrides config)")
	root.PersistentFlags().Bool("no-color", false, "disable colored answers")

	root.AddCommand(newTaxicabCmd(), newKeypadCmd(), newLayoutsCmd(), newVersionCmd())
	return root
}

// newLauncher wires config, logger and layouts from the persistent flags.
func newLauncher(cmd *cobra.Command) (*cli.Launcher, error) {
	path, _ := cmd.Flags().GetString("config")
	load := config.LoadDefault
	if path != "" {
		load = func() (*config.Config, error) { return config.Load(path) }
	}
	cfg, err := load()
	if err != nil {
		return nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	layouts, err := cfg.Registry()
	if err != nil {
		return nil, err
	}
	noColor, _ := cmd.Flags().GetBool("no-color")

	return cli.NewLauncher(
		cli.WithInput(cmd.InOrStdin()),
		cli.WithOutput(cmd.OutOrStdout()),
		cli.WithLogger(logging.NewWithWriter(cmd.ErrOrStderr(), level)),
		cli.WithLayouts(layouts),
		cli.WithColor(!noColor && !cfg.NoColor),
	), nil
}

// argsOrStdin joins args with sep, or reads all of stdin when there are none.
func argsOrStdin(cmd *cobra.Command, args []string, sep string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, sep), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read instructions: %w", err)
	}
	return string(data), nil
}
