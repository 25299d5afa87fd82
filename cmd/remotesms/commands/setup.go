package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"remotesms/internal/domain"
)

func setupCmd() *cobra.Command {
	var password, recovery, phone string
	var change bool
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Set the command password, recovery code and registered phone",
		Long: "Set the command password, recovery code and registered phone.\n\n" +
			"With --change an existing record is updated instead: the password is\n" +
			"replaced, and the recovery code too when --recovery is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.RequireStoreKey(); err != nil {
				return err
			}
			if change {
				return changeCredentials(password, recovery)
			}
			password, err := secretOrPrompt(password, "Password")
			if err != nil {
				return err
			}
			recovery, err := secretOrPrompt(recovery, "Recovery code")
			if err != nil {
				return err
			}
			if err := appCtx.Credentials.Setup(password, recovery, domain.Address(phone)); err != nil {
				return err
			}
			fmt.Println("Credentials saved.")
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "command password, at least 4 characters (prompted when omitted)")
	cmd.Flags().StringVar(&recovery, "recovery", "", "recovery code for password resets (prompted when omitted)")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number that receives reset codes")
	cmd.Flags().BoolVar(&change, "change", false, "update the password of an existing record")
	return cmd
}

func changeCredentials(password, recovery string) error {
	password, err := secretOrPrompt(password, "New password")
	if err != nil {
		return err
	}
	if err := appCtx.Credentials.SetPassword(password); err != nil {
		return err
	}
	if recovery != "" {
		if err := appCtx.Credentials.SetRecoveryCode(recovery); err != nil {
			return fmt.Errorf("password changed, recovery code not: %w", err)
		}
	}
	fmt.Println("Credentials updated.")
	return nil
}
