package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"remotesms/internal/domain"
	domaintypes "remotesms/internal/domain/types"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Add rows to the telephony database",
	}
	cmd.AddCommand(seedCallCmd(), seedSmsCmd())
	return cmd
}

func seedCallCmd() *cobra.Command {
	var (
		direction string
		duration  time.Duration
		ago       time.Duration
	)
	cmd := &cobra.Command{
		Use:   "call <number>",
		Short: "Add a call-log entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := parseDirection(direction)
			if err != nil {
				return err
			}
			e := domain.CallEntry{
				Number:    args[0],
				Direction: dir,
				At:        time.Now().Add(-ago),
				Duration:  duration,
			}
			if err := appCtx.Telephony.InsertCall(cmd.Context(), e); err != nil {
				return err
			}
			fmt.Printf("added %s call %s\n", dir, e.Number)
			return nil
		},
	}
	cmd.Flags().StringVar(&direction, "type", "incoming", "incoming, outgoing or missed")
	cmd.Flags().DurationVar(&duration, "duration", 0, "call duration")
	cmd.Flags().DurationVar(&ago, "ago", 0, "how long ago the call happened")
	return cmd
}

func seedSmsCmd() *cobra.Command {
	var ago time.Duration
	cmd := &cobra.Command{
		Use:   "sms <from> <body>",
		Short: "Add a received SMS",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := domain.SmsEntry{Address: args[0], Body: args[1], At: time.Now().Add(-ago)}
			if err := appCtx.Telephony.InsertInbox(cmd.Context(), e); err != nil {
				return err
			}
			fmt.Printf("added sms from %s\n", e.Address)
			return nil
		},
	}
	cmd.Flags().DurationVar(&ago, "ago", 0, "how long ago the message arrived")
	return cmd
}

func parseDirection(s string) (domain.CallDirection, error) {
	switch strings.ToLower(s) {
	case "incoming", "in":
		return domaintypes.CallIncoming, nil
	case "outgoing", "out":
		return domaintypes.CallOutgoing, nil
	case "missed":
		return domaintypes.CallMissed, nil
	}
	return 0, fmt.Errorf("unknown call type %q", s)
}
