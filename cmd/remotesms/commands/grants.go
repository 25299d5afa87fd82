package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	domaintypes "remotesms/internal/domain/types"
)

func grantCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grant <capability>...",
		Short: "Grant capabilities (call_log, sms, fine_location, coarse_location)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range args {
				c, err := domaintypes.ParseCapability(a)
				if err != nil {
					return err
				}
				if err := appCtx.Grants.Grant(c); err != nil {
					return err
				}
				fmt.Printf("granted %s\n", c)
			}
			return nil
		},
	}
}

func revokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke <capability>...",
		Short: "Revoke capabilities",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range args {
				c, err := domaintypes.ParseCapability(a)
				if err != nil {
					return err
				}
				if err := appCtx.Grants.Revoke(c); err != nil {
					return err
				}
				fmt.Printf("revoked %s\n", c)
			}
			return nil
		},
	}
}

func grantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grants",
		Short: "List capabilities and whether they are granted",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range domaintypes.AllCapabilities() {
				state := "denied"
				if appCtx.Grants.Granted(c) {
					state = "granted"
				}
				fmt.Printf("%-16s %s\n", c, state)
			}
			return nil
		},
	}
}
