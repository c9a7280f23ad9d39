package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/revu-dev/revu/internal/adapters/inbound/httpapi"
	"github.com/revu-dev/revu/internal/application"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(root *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the review API over HTTP",
		Long: "Start an HTTP server exposing POST /api/review, POST /v1/chat/completions, " +
			"GET /api/checks and GET /healthz.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid options: %w", err)
			}
			logE, err := newLogger(cmd, cfg)
			if err != nil {
				return err
			}

			api := httpapi.New(application.NewReviewService(cfg), cfg.Server, logE,
				httpapi.WithCodeDetector(root.detect))
			srv := &http.Server{
				Addr:              cfg.Server.Addr,
				Handler:           api.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()
			logE.WithField("addr", cfg.Server.Addr).Info("listening")

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("serving http: %w", err)
			case <-cmd.Context().Done():
				logE.Info("shutting down")
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := srv.Shutdown(ctx); err != nil {
					return fmt.Errorf("shutting down: %w", err)
				}
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr, default :3000)")
	return cmd
}
