package main

import (
	"github.com/spf13/cobra"

	"auth-client/app/di"
	"auth-client/app/domain"
)

// signUpConfig holds configuration for the signup command.
type signUpConfig struct {
	email           string
	password        string
	confirmPassword string
}

// NewSignUpCmd creates the signup subcommand.
func NewSignUpCmd() *cobra.Command {
	cfg := &signUpConfig{}

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new account",
		Long: `Register a new account with the identity provider. When the
provider sends a confirmation code, the command prompts for it and
confirms the account in the same run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSignUp(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.email, "email", "", "account email address")
	cmd.Flags().StringVar(&cfg.password, "password", "", "account password")
	cmd.Flags().StringVar(&cfg.confirmPassword, "confirm-password", "", "password confirmation (defaults to --password)")

	return cmd
}

func runSignUp(cmd *cobra.Command, cfg *signUpConfig) error {
	container, err := newContainer(cmd.Context())
	if err != nil {
		return err
	}

	if cfg.confirmPassword == "" {
		cfg.confirmPassword = cfg.password
	}

	result, err := container.AuthUsecase.SubmitSignUp(cmd.Context(), cfg.email, cfg.password, cfg.confirmPassword)
	if err != nil {
		return userError(err)
	}

	if !result.NeedsConfirmation {
		cmd.Println("account created, run `authctl login` to sign in")
		return nil
	}

	cmd.Printf("confirmation code sent to %s\n", result.Destination)
	if err := confirmInteractively(cmd, container); err != nil {
		return err
	}

	cmd.Println("account confirmed, run `authctl login` to sign in")
	return nil
}

// confirmInteractively prompts for the confirmation code until the account is
// confirmed or the user aborts with an empty line. Entering "resend" requests
// a fresh code.
func confirmInteractively(cmd *cobra.Command, container *di.Container) error {
	for {
		code, err := promptLine(cmd, "confirmation code (empty to abort, `resend` for a new code): ")
		if err != nil {
			return err
		}

		switch code {
		case "":
			return userError(domain.NewAuthError(domain.ErrKindUserNotConfirmed, "account not confirmed"))
		case "resend":
			if err := container.AuthUsecase.ResendConfirmationCode(cmd.Context()); err != nil {
				cmd.Println(userError(err).Error())
				continue
			}
			cmd.Println("a new code is on its way")
			continue
		}

		err = container.AuthUsecase.ConfirmSignUp(cmd.Context(), code)
		if err == nil {
			return nil
		}
		if domain.IsKind(err, domain.ErrKindCodeMismatch) || domain.IsKind(err, domain.ErrKindCodeExpired) || domain.IsValidation(err) {
			cmd.Println(userError(err).Error())
			continue
		}
		return userError(err)
	}
}
