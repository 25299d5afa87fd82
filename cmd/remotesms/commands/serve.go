package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// serve: poll the gateway for this device's mailbox and execute commands.
func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Poll the gateway and execute inbound commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.RequireStoreKey(); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log := appCtx.Log
			if ok, err := appCtx.Credentials.Configured(); err != nil {
				log.Error().Err(err).Msg("credential record unreadable; every command will be rejected")
			} else if !ok {
				log.Warn().Msg("no password configured; every command will be rejected until setup runs")
			}

			states, cancel := appCtx.Device.Subscribe()
			defer cancel()
			go func() {
				for st := range states {
					log.Info().Bool("light_on", st.LightOn).Msg("device state changed")
				}
			}()

			log.Info().
				Str("gateway", appCtx.Config.Gateway.URL).
				Str("address", appCtx.Address().String()).
				Strs("commands", appCtx.Registry.Keywords()).
				Msg("serving")
			return appCtx.Poller().Run(ctx)
		},
	}
}
