package internal

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ESloman/cslo/internal/harness"
	"github.com/ESloman/cslo/internal/server"
	"github.com/spf13/cobra"
)

func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a saved run report over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			reportPath, _ := cmd.Flags().GetString("report")
			addr, _ := cmd.Flags().GetString("addr")

			report, err := harness.LoadReport(reportPath)
			if err != nil {
				return err
			}

			logger := newLogger(cmd)
			srv := server.NewReportServer(report, logger)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start(addr)
			}()

			select {
			case <-ctx.Done():
				logger.Info("shutting down report server")
				return srv.Stop()
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}

	cmd.Flags().String("report", "", "Path to a report JSON written by 'slotest run --report'")
	cmd.Flags().String("addr", ":8080", "Address to listen on")
	_ = cmd.MarkFlagRequired("report")

	return cmd
}
