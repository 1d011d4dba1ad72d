package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"auth-client/app/config"
	"auth-client/app/di"
	"auth-client/app/utils/logger"
)

// NewRootCmd creates the root command for the authctl CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "authctl",
		Short: "authctl - prescription platform session client",
		Long: `authctl drives the prescription platform auth flows from the
command line: account sign-up, sign-in with backend session exchange,
profile completion, and password reset.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewSignUpCmd())
	cmd.AddCommand(NewLoginCmd())
	cmd.AddCommand(NewLogoutCmd())
	cmd.AddCommand(NewWhoamiCmd())
	cmd.AddCommand(NewCompleteProfileCmd())
	cmd.AddCommand(NewResetPasswordCmd())

	return cmd
}

// newContainer loads configuration and builds the full dependency stack.
func newContainer(ctx context.Context) (*di.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	container, err := di.NewContainer(ctx, cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dependency container: %w", err)
	}
	return container, nil
}

// promptLine reads one line of input from the command's stdin.
func promptLine(cmd *cobra.Command, prompt string) (string, error) {
	cmd.Print(prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
