package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func resetPasswordCmd() *cobra.Command {
	var recovery, otp, newPassword string
	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Replace the password using the recovery code or an OTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.RequireStoreKey(); err != nil {
				return err
			}
			newPassword, err := secretOrPrompt(newPassword, "New password")
			if err != nil {
				return err
			}
			switch {
			case recovery != "" && otp != "":
				return fmt.Errorf("use either --recovery or --otp, not both")
			case recovery != "":
				err = appCtx.Credentials.ResetWithRecoveryCode(recovery, newPassword)
			case otp != "":
				err = appCtx.Credentials.ResetWithOTP(otp, newPassword)
			default:
				return fmt.Errorf("--recovery or --otp required")
			}
			if err != nil {
				return err
			}
			fmt.Println("Password updated.")
			return nil
		},
	}
	cmd.Flags().StringVar(&recovery, "recovery", "", "recovery code chosen at setup")
	cmd.Flags().StringVar(&otp, "otp", "", "code sent by the otp command")
	cmd.Flags().StringVar(&newPassword, "new", "", "new command password (prompted when omitted)")
	return cmd
}
