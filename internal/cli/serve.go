package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"a11ycheck/internal/checklist/handler"
	"a11ycheck/internal/platform/httpserver"
	"a11ycheck/internal/platform/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the checklist authority HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	svc, cfg, log, err := buildService()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	h := handler.New(svc, log, metrics.New(reg), reg)
	srv := httpserver.New(cfg.Server.Addr, h.Router())

	log.Info("starting checklist authority", "addr", cfg.Server.Addr, "strategy", cfg.Storage.Strategy)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
