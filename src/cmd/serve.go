package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"onboarding-logger/src/database"
	"onboarding-logger/src/metrics"
	"onboarding-logger/src/routes"
	"onboarding-logger/src/tracing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the /log-event, /submit and /export HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	cfg, log, err := bootstrap(os.Stdout)
	if err != nil {
		return err
	}
	defer log.Sync()

	if err := cfg.RequireExportToken(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, "onboarding-logger", cfg.OTLPEndpoint)
	if err != nil {
		return err
	}

	m := metrics.New()
	if cfg.MetricsAddr != "" {
		srv := m.Serve(cfg.MetricsAddr, log)
		defer srv.Close()
	}

	stores, err := database.OpenStores(ctx, cfg, m, log)
	if err != nil {
		return err
	}

	app := routes.NewApp(routes.Deps{
		EventStore:      stores.Events,
		SubmissionStore: stores.Submissions,
		AllowedOrigin:   cfg.AllowedOrigin,
		ExportToken:     cfg.ExportToken,
		SwaggerEnabled:  cfg.SwaggerEnabled,
		Metrics:         m,
		Log:             log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server is running", zap.String("port", cfg.Port),
			zap.String("events_store", cfg.Storage.Events),
			zap.String("submissions_store", cfg.Storage.Submissions))
		errCh <- app.Listen(fmt.Sprintf(":%s", url.PathEscape(cfg.Port)))
	}()

	select {
	case err = <-errCh:
	case <-ctx.Done():
		log.Info("shutting down")
		err = app.ShutdownWithTimeout(shutdownTimeout)
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if cerr := stores.Close(closeCtx); cerr != nil {
		log.Warn("closing stores", zap.Error(cerr))
	}
	if terr := shutdownTracing(closeCtx); terr != nil {
		log.Warn("Error shutting down tracer", zap.Error(terr))
	}
	return err
}
