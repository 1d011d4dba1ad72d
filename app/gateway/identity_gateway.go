package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"auth-client/app/domain"
	"auth-client/app/port"
)

// IdentityGateway implements port.IdentityGateway.
// It acts as an anti-corruption layer between the orchestrator and the
// identity provider driver: logging lives here, business decisions do not.
type IdentityGateway struct {
	client port.IdentityClient
	logger *slog.Logger
}

// NewIdentityGateway creates a new IdentityGateway instance
func NewIdentityGateway(client port.IdentityClient, logger *slog.Logger) *IdentityGateway {
	return &IdentityGateway{
		client: client,
		logger: logger.With("component", "identity_gateway"),
	}
}

// SignUp registers a new account with the identity provider
func (g *IdentityGateway) SignUp(ctx context.Context, email, password string) (*domain.SignUpResult, error) {
	g.logger.Info("submitting sign-up")

	result, err := g.client.SignUp(ctx, email, password)
	if err != nil {
		g.logger.Error("failed to submit sign-up", "error", err)
		return nil, fmt.Errorf("failed to submit sign-up: %w", err)
	}

	g.logger.Info("sign-up submitted successfully",
		"needs_confirmation", result.NeedsConfirmation)
	return result, nil
}

// ConfirmSignUp submits a sign-up confirmation code
func (g *IdentityGateway) ConfirmSignUp(ctx context.Context, email, code string) error {
	g.logger.Info("confirming sign-up")

	if err := g.client.ConfirmSignUp(ctx, email, code); err != nil {
		g.logger.Error("failed to confirm sign-up", "error", err)
		return fmt.Errorf("failed to confirm sign-up: %w", err)
	}

	g.logger.Info("sign-up confirmed successfully")
	return nil
}

// ResendConfirmationCode asks the provider to send a fresh confirmation code
func (g *IdentityGateway) ResendConfirmationCode(ctx context.Context, email string) error {
	g.logger.Info("resending confirmation code")

	if err := g.client.ResendConfirmationCode(ctx, email); err != nil {
		g.logger.Error("failed to resend confirmation code", "error", err)
		return fmt.Errorf("failed to resend confirmation code: %w", err)
	}

	g.logger.Info("confirmation code resent successfully")
	return nil
}

// SignIn authenticates with the identity provider
func (g *IdentityGateway) SignIn(ctx context.Context, email, password string) (*domain.SignInResult, error) {
	g.logger.Info("submitting sign-in")

	result, err := g.client.SignIn(ctx, email, password)
	if err != nil {
		g.logger.Error("failed to submit sign-in", "error", err)
		return nil, fmt.Errorf("failed to submit sign-in: %w", err)
	}

	g.logger.Info("sign-in submitted successfully",
		"signed_in", result.SignedIn,
		"next_step", string(result.Step))
	return result, nil
}

// SignOut invalidates the provider session
func (g *IdentityGateway) SignOut(ctx context.Context) error {
	g.logger.Info("signing out of identity provider")

	if err := g.client.SignOut(ctx); err != nil {
		g.logger.Error("failed to sign out of identity provider", "error", err)
		return fmt.Errorf("failed to sign out of identity provider: %w", err)
	}

	g.logger.Info("signed out of identity provider successfully")
	return nil
}

// FetchCurrentCredential returns the identity credential of the active session
func (g *IdentityGateway) FetchCurrentCredential(ctx context.Context) (string, error) {
	credential, err := g.client.FetchCurrentCredential(ctx)
	if err != nil {
		g.logger.Error("failed to fetch current credential", "error", err)
		return "", fmt.Errorf("failed to fetch current credential: %w", err)
	}
	return credential, nil
}

// ResetPassword starts the password reset flow
func (g *IdentityGateway) ResetPassword(ctx context.Context, email string) error {
	g.logger.Info("requesting password reset")

	if err := g.client.ResetPassword(ctx, email); err != nil {
		g.logger.Error("failed to request password reset", "error", err)
		return fmt.Errorf("failed to request password reset: %w", err)
	}

	g.logger.Info("password reset requested successfully")
	return nil
}

// ConfirmResetPassword completes the password reset with the emailed code
func (g *IdentityGateway) ConfirmResetPassword(ctx context.Context, email, code, newPassword string) error {
	g.logger.Info("confirming password reset")

	if err := g.client.ConfirmResetPassword(ctx, email, code, newPassword); err != nil {
		g.logger.Error("failed to confirm password reset", "error", err)
		return fmt.Errorf("failed to confirm password reset: %w", err)
	}

	g.logger.Info("password reset confirmed successfully")
	return nil
}
