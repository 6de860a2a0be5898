package cmd

import (
	"os"

	"onboarding-logger/src/database"
	"onboarding-logger/src/metrics"
	"onboarding-logger/src/services/events"
	"onboarding-logger/src/services/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportPrefix string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write stored events as NDJSON to stdout, reading the configured store directly",
	RunE: func(cmd *cobra.Command, args []string) error {
		// stdout carries the NDJSON, so logs go to stderr
		cfg, log, err := bootstrap(os.Stderr)
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx := cmd.Context()
		stores, err := database.OpenStores(ctx, cfg, metrics.New(), log)
		if err != nil {
			return err
		}
		defer stores.Close(ctx)

		out, err := export.NewExportService(stores.Events).ExportEvents(ctx, exportPrefix)
		if err != nil {
			return err
		}
		log.Debug("export written", zap.String("prefix", exportPrefix), zap.Int("bytes", len(out)))

		_, err = os.Stdout.Write(out)
		return err
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportPrefix, "prefix", events.KeyPrefix, "key prefix to export, e.g. events/<session_id>")
}
