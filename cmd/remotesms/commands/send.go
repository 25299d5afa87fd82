package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"remotesms/internal/domain"
)

// send <to> <body>: post a text message through the gateway.
func sendCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "send <to> <body>",
		Short: "Send a text message, e.g. send device '#1234 GET_BATTERY'",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			to := domain.Address(args[0])
			if err := appCtx.Messages.SendMessage(cmd.Context(), domain.Address(from), to, args[1]); err != nil {
				return err
			}
			fmt.Println("sent")
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "sender address (your phone number)")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}
