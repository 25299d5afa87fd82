package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"remotesms/internal/services/credential"
)

func otpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "otp",
		Short: "Send a one-time reset code to the registered phone",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.RequireStoreKey(); err != nil {
				return err
			}
			phone, ok, err := appCtx.Credentials.RegisteredPhone()
			if err != nil {
				return err
			}
			if !ok {
				return credential.ErrNoPhone
			}
			code, err := appCtx.Credentials.GenerateOTP()
			if err != nil {
				return err
			}
			if err := appCtx.Messages.SendMessage(cmd.Context(), appCtx.Address(), phone, "Your OTP is: "+code); err != nil {
				return fmt.Errorf("send otp: %w", err)
			}
			fmt.Printf("OTP sent to %s\n", phone)
			return nil
		},
	}
}
