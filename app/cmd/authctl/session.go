package main

import (
	"github.com/spf13/cobra"
)

// NewLogoutCmd creates the logout subcommand.
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and wipe the local session",
		Long: `Invalidate the identity provider session and wipe the locally
persisted credentials. The local wipe runs even when the provider
cannot be reached.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, err := newContainer(cmd.Context())
			if err != nil {
				return err
			}

			if err := container.AuthUsecase.SignOut(cmd.Context()); err != nil {
				return userError(err)
			}

			cmd.Println("signed out")
			return nil
		},
	}
}

// NewWhoamiCmd creates the whoami subcommand.
func NewWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session and profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, err := newContainer(cmd.Context())
			if err != nil {
				return err
			}

			state, err := container.AuthUsecase.RestoreSession(cmd.Context())
			if err != nil {
				return userError(err)
			}

			if !state.IsAuthenticated() {
				cmd.Println("not signed in")
				return nil
			}

			printState(cmd, state)
			return printProfile(cmd, state.Profile)
		},
	}
}
