package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"auth-client/app/domain"
)

// userError rewrites an auth failure into the message a user should see.
// Non-auth errors pass through unchanged.
func userError(err error) error {
	if err == nil {
		return nil
	}
	if authErr, ok := domain.AsAuthError(err); ok {
		return fmt.Errorf("%s", authErr.UserMessage())
	}
	return err
}

// printState renders the session state after a successful operation.
func printState(cmd *cobra.Command, state *domain.SessionState) {
	switch state.State {
	case domain.StateReady:
		cmd.Println("signed in, profile complete")
	case domain.StateProfileIncomplete:
		cmd.Println("signed in, profile incomplete - run `authctl complete-profile`")
	case domain.StateAwaitingConfirmation:
		cmd.Println("account awaits confirmation")
	default:
		cmd.Printf("session state: %s\n", state.State)
	}
}

// printProfile renders the cached profile snapshot as indented JSON.
func printProfile(cmd *cobra.Command, profile *domain.UserProfile) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render profile: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
