package main

import (
	"github.com/spf13/cobra"

	"auth-client/app/domain"
)

// loginConfig holds configuration for the login command.
type loginConfig struct {
	email    string
	password string
}

// NewLoginCmd creates the login subcommand.
func NewLoginCmd() *cobra.Command {
	cfg := &loginConfig{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and establish a backend session",
		Long: `Sign in with the identity provider and exchange the credential
for a backend session. The session is persisted locally so later
commands can restore it.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLogin(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.email, "email", "", "account email address")
	cmd.Flags().StringVar(&cfg.password, "password", "", "account password")

	return cmd
}

func runLogin(cmd *cobra.Command, cfg *loginConfig) error {
	container, err := newContainer(cmd.Context())
	if err != nil {
		return err
	}

	state, err := container.AuthUsecase.SubmitSignIn(cmd.Context(), cfg.email, cfg.password)
	if err != nil {
		return userError(err)
	}

	// An unconfirmed account parks the flow; confirm and sign in again at
	// the user's explicit request.
	if state.State == domain.StateAwaitingConfirmation {
		cmd.Println("this account still needs its confirmation code")
		if err := confirmInteractively(cmd, container); err != nil {
			return err
		}
		state, err = container.AuthUsecase.SubmitSignIn(cmd.Context(), cfg.email, cfg.password)
		if err != nil {
			return userError(err)
		}
	}

	printState(cmd, state)
	return nil
}
