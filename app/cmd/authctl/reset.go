package main

import (
	"github.com/spf13/cobra"

	"auth-client/app/domain"
)

// resetConfig holds configuration for the reset-password command.
type resetConfig struct {
	email string
}

// NewResetPasswordCmd creates the reset-password subcommand.
func NewResetPasswordCmd() *cobra.Command {
	cfg := &resetConfig{}

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Reset the account password",
		Long: `Start the password reset flow. The identity provider emails a
code; the command prompts for the code and the new password and
completes the reset in the same run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResetPassword(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.email, "email", "", "account email address")

	return cmd
}

func runResetPassword(cmd *cobra.Command, cfg *resetConfig) error {
	container, err := newContainer(cmd.Context())
	if err != nil {
		return err
	}

	if err := container.AuthUsecase.RequestPasswordReset(cmd.Context(), cfg.email); err != nil {
		return userError(err)
	}
	cmd.Printf("reset code sent to %s\n", cfg.email)

	for {
		code, err := promptLine(cmd, "reset code (empty to abort): ")
		if err != nil {
			return err
		}
		if code == "" {
			return userError(domain.NewAuthError(domain.ErrKindNotAuthorized, "password reset aborted"))
		}

		newPassword, err := promptLine(cmd, "new password: ")
		if err != nil {
			return err
		}

		err = container.AuthUsecase.ConfirmPasswordReset(cmd.Context(), code, newPassword)
		if err == nil {
			cmd.Println("password reset, run `authctl login` with the new password")
			return nil
		}
		if domain.IsKind(err, domain.ErrKindCodeMismatch) || domain.IsKind(err, domain.ErrKindCodeExpired) || domain.IsValidation(err) {
			cmd.Println(userError(err).Error())
			continue
		}
		return userError(err)
	}
}
