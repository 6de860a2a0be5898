package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"onboarding-logger/src/config"
	"onboarding-logger/src/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "onboarding-logger",
	Short: "Append-only logger for onboarding form interaction events",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
	SilenceUsage: true,
}

// Execute runs the CLI; without a subcommand it serves HTTP.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, exportCmd)
}

// bootstrap loads configuration and builds the logger shared by every command.
func bootstrap(console io.Writer) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.Init(cfg.Log.Level, cfg.Log.File, console)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, log, nil
}
