package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go -package=mocks

import (
	"context"

	"auth-client/app/domain"
)

// AuthUsecase defines the session orchestration operations exposed to the UI
// layer. Every operation is a sequential chain of suspendable steps; callers
// observe only the terminal outcome.
type AuthUsecase interface {
	// Sign-up flow
	SubmitSignUp(ctx context.Context, email, password, confirmPassword string) (*domain.SignUpResult, error)
	ConfirmSignUp(ctx context.Context, code string) error
	ResendConfirmationCode(ctx context.Context) error

	// Sign-in flow
	SubmitSignIn(ctx context.Context, email, password string) (*domain.SessionState, error)
	SignOut(ctx context.Context) error

	// Password reset flow
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, code, newPassword string) error

	// Profile
	RefreshProfile(ctx context.Context) (*domain.SessionState, error)
	CompleteProfile(ctx context.Context, data *domain.ProfileData) (*domain.SessionState, error)

	// Session restore on app launch
	RestoreSession(ctx context.Context) (*domain.SessionState, error)
	State() *domain.SessionState
}

// IdentityGateway is the orchestrator's view of the identity provider. It is
// an anti-corruption layer over the identity driver and performs no business
// decisions.
type IdentityGateway interface {
	SignUp(ctx context.Context, email, password string) (*domain.SignUpResult, error)
	ConfirmSignUp(ctx context.Context, email, code string) error
	ResendConfirmationCode(ctx context.Context, email string) error
	SignIn(ctx context.Context, email, password string) (*domain.SignInResult, error)
	SignOut(ctx context.Context) error
	FetchCurrentCredential(ctx context.Context) (string, error)
	ResetPassword(ctx context.Context, email string) error
	ConfirmResetPassword(ctx context.Context, email, code, newPassword string) error
}

// IdentityClient is the provider-level driver interface the gateway wraps.
// It has the same shape as IdentityGateway; the gateway adds logging and
// keeps driver types out of the usecase layer.
type IdentityClient interface {
	SignUp(ctx context.Context, email, password string) (*domain.SignUpResult, error)
	ConfirmSignUp(ctx context.Context, email, code string) error
	ResendConfirmationCode(ctx context.Context, email string) error
	SignIn(ctx context.Context, email, password string) (*domain.SignInResult, error)
	SignOut(ctx context.Context) error
	FetchCurrentCredential(ctx context.Context) (string, error)
	ResetPassword(ctx context.Context, email string) error
	ConfirmResetPassword(ctx context.Context, email, code, newPassword string) error
}

// SessionExchanger performs the backend session exchange and the profile
// calls that follow it. Exchange issues exactly one network call and never
// retries; retries are the caller's explicit decision.
type SessionExchanger interface {
	Exchange(ctx context.Context, identityCredential string) (*domain.ExchangeResult, error)
	FetchProfile(ctx context.Context, apiToken string) (*domain.UserProfile, error)
	CompleteProfile(ctx context.Context, apiToken string, data *domain.ProfileData) (*domain.UserProfile, error)
}

// CredentialStore is durable, encrypted-at-rest key/value persistence for
// session secrets. Reads and writes are atomic per key. Only the
// orchestrator writes session-identifying keys.
type CredentialStore interface {
	Read(ctx context.Context, key string) (string, error)
	Write(ctx context.Context, key, value string) error
	ClearAll(ctx context.Context) error
}
