package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"remotesms/internal/app"
)

var (
	cfgViper *viper.Viper
	appCtx   *app.Wire
)

// Execute runs the root command.
func Execute() error {
	cfgViper = app.NewViper()

	root := &cobra.Command{
		Use:          "remotesms",
		Short:        "Authenticated SMS remote command channel",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load(cfgViper)
			if err != nil {
				return err
			}
			log, err := app.NewLogger(cfg.Log, os.Stderr)
			if err != nil {
				return err
			}
			appCtx, err = app.NewWire(cfg, log)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appCtx == nil {
				return nil
			}
			return appCtx.Close()
		},
	}

	pf := root.PersistentFlags()
	pf.String("home", "", "state dir (default ~/.remotesms)")
	pf.String("gateway", "", "gateway base URL (e.g. http://127.0.0.1:8080)")
	pf.String("address", "", "this device's mailbox on the gateway")
	pf.String("store-key", "", "key sealing the credential record")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("log-format", "", "log format (auto, console, json)")

	for key, flag := range map[string]string{
		"home":            "home",
		"gateway.url":     "gateway",
		"gateway.address": "address",
		"store.key":       "store-key",
		"log.level":       "log-level",
		"log.format":      "log-format",
	} {
		if err := cfgViper.BindPFlag(key, pf.Lookup(flag)); err != nil {
			return err
		}
	}

	root.AddCommand(
		setupCmd(),
		otpCmd(),
		resetPasswordCmd(),
		grantCmd(),
		revokeCmd(),
		grantsCmd(),
		serveCmd(),
		sendCmd(),
		recvCmd(),
		seedCmd(),
		fixCmd(),
	)
	return root.Execute()
}
