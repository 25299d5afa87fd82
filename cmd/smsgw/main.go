package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"remotesms/internal/app"
	"remotesms/internal/gateway"
)

func main() {
	var listen, level string
	cmd := &cobra.Command{
		Use:          "smsgw",
		Short:        "In-memory SMS gateway for development",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := app.NewLogger(app.LogConfig{Level: level, Format: "auto"}, os.Stderr)
			if err != nil {
				return err
			}
			srv := &http.Server{
				Addr:              listen,
				Handler:           gateway.NewServer(log).Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			log.Info().Str("listen", listen).Msg("gateway listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			log.Info().Msg("gateway stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&listen, "listen", ":8080", "listen address")
	cmd.Flags().StringVar(&level, "log-level", "info", "log level")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
