package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"remotesms/internal/domain"
)

// recv: fetch and print queued messages for --as.
func recvCmd() *cobra.Command {
	var (
		as    string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "recv",
		Short: "Fetch your queued messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := appCtx.Messages.ReceiveMessages(cmd.Context(), domain.Address(as), limit)
			if err != nil {
				return err
			}
			for _, m := range msgs {
				fmt.Printf("[%s %s] %s\n", m.ReceivedAt.Format(time.DateTime), m.From, m.Body)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&as, "as", "", "mailbox to read (your phone number)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum messages to fetch (0 = all)")
	_ = cmd.MarkFlagRequired("as")
	return cmd
}
