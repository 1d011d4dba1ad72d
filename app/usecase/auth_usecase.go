package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"

	"auth-client/app/domain"
	"auth-client/app/port"
	"auth-client/app/utils/validator"
)

// AuthUseCase is the session orchestrator. It owns the single session state
// of the process and drives every auth flow as a sequential chain of steps:
// validate locally, call the identity provider, exchange the credential with
// the backend, persist, and land in a terminal state. There is no background
// work and no automatic retry; every network call happens because an
// operation explicitly reached that step.
type AuthUseCase struct {
	identityGateway port.IdentityGateway
	exchanger       port.SessionExchanger
	store           port.CredentialStore
	validator       *validator.Validator
	logger          *slog.Logger

	mu    sync.Mutex
	state *domain.SessionState
}

// NewAuthUseCase creates a new AuthUseCase instance
func NewAuthUseCase(
	identityGateway port.IdentityGateway,
	exchanger port.SessionExchanger,
	store port.CredentialStore,
	v *validator.Validator,
	logger *slog.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		identityGateway: identityGateway,
		exchanger:       exchanger,
		store:           store,
		validator:       v,
		logger:          logger.With("component", "auth_usecase"),
		state:           domain.NewSessionState(),
	}
}

type signUpInput struct {
	Email           string `json:"email" validate:"login_email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type confirmCodeInput struct {
	Code string `json:"code" validate:"confirmation_code"`
}

type signInInput struct {
	Email    string `json:"email" validate:"login_email"`
	Password string `json:"password" validate:"required"`
}

type resetRequestInput struct {
	Email string `json:"email" validate:"login_email"`
}

type resetConfirmInput struct {
	Code        string `json:"code" validate:"reset_code"`
	NewPassword string `json:"new_password" validate:"reset_password"`
}

// SubmitSignUp validates the form locally, then registers the account with
// the identity provider. Validation failures return before any network call.
func (uc *AuthUseCase) SubmitSignUp(ctx context.Context, email, password, confirmPassword string) (*domain.SignUpResult, error) {
	if err := uc.validator.Validate(signUpInput{
		Email:           email,
		Password:        password,
		ConfirmPassword: confirmPassword,
	}); err != nil {
		return nil, err
	}

	uc.setState(domain.StateSigningUp)

	result, err := uc.identityGateway.SignUp(ctx, email, password)
	if err != nil {
		uc.setState(domain.StateUnauthenticated)
		return nil, err
	}

	uc.mu.Lock()
	uc.state.PendingEmail = email
	if result.NeedsConfirmation {
		uc.state.State = domain.StateAwaitingConfirmation
	} else {
		uc.state.State = domain.StateConfirmed
	}
	uc.mu.Unlock()

	uc.logger.Info("sign-up submitted",
		"needs_confirmation", result.NeedsConfirmation)
	return result, nil
}

// ConfirmSignUp submits the sign-up confirmation code for the pending email.
// The code length is checked locally; a wrong-length code never reaches the
// provider.
func (uc *AuthUseCase) ConfirmSignUp(ctx context.Context, code string) error {
	if err := uc.validator.Validate(confirmCodeInput{Code: code}); err != nil {
		return err
	}

	email, err := uc.pendingEmail()
	if err != nil {
		return err
	}

	if err := uc.identityGateway.ConfirmSignUp(ctx, email, code); err != nil {
		return err
	}

	uc.setState(domain.StateConfirmed)
	uc.logger.Info("sign-up confirmed")
	return nil
}

// ResendConfirmationCode asks the provider for a fresh code for the pending
// email.
func (uc *AuthUseCase) ResendConfirmationCode(ctx context.Context) error {
	email, err := uc.pendingEmail()
	if err != nil {
		return err
	}
	return uc.identityGateway.ResendConfirmationCode(ctx, email)
}

// SubmitSignIn authenticates with the identity provider and exchanges the
// resulting credential for a backend session. Any lingering provider session
// is signed out first so the exchange always runs against the fresh identity;
// that sign-out is best-effort and its failure is swallowed.
func (uc *AuthUseCase) SubmitSignIn(ctx context.Context, email, password string) (*domain.SessionState, error) {
	if err := uc.validator.Validate(signInInput{Email: email, Password: password}); err != nil {
		return nil, err
	}

	ctx, span := otel.Tracer("auth-usecase").Start(ctx, "submit_sign_in")
	defer span.End()

	uc.setState(domain.StateSigningIn)

	if err := uc.identityGateway.SignOut(ctx); err != nil && !errors.Is(err, domain.ErrNoActiveSession) {
		uc.logger.Warn("pre-sign-in sign-out failed, continuing", "error", err)
	}

	result, err := uc.identityGateway.SignIn(ctx, email, password)
	if err != nil {
		uc.setState(domain.StateUnauthenticated)
		return nil, err
	}

	if !result.SignedIn {
		switch result.Step {
		case domain.NextStepConfirmSignUp:
			uc.mu.Lock()
			uc.state.State = domain.StateAwaitingConfirmation
			uc.state.PendingEmail = email
			uc.mu.Unlock()
			uc.logger.Info("sign-in deferred, account awaits confirmation")
			return uc.snapshot(), nil
		default:
			uc.setState(domain.StateUnauthenticated)
			return nil, domain.NewAuthError(domain.ErrKindUnsupportedStep,
				fmt.Sprintf("sign-in requires unsupported step %q", result.StepName))
		}
	}

	credential, err := uc.identityGateway.FetchCurrentCredential(ctx)
	if err != nil {
		uc.setState(domain.StateUnauthenticated)
		return nil, domain.WrapError(domain.ErrKindInvariant,
			"signed in but no credential available", err)
	}

	return uc.establishSession(ctx, credential)
}

// establishSession exchanges an identity credential for a backend session,
// derives the terminal state from the returned profile, and persists the
// session. On a failed exchange nothing is persisted and the session stays
// unauthenticated.
func (uc *AuthUseCase) establishSession(ctx context.Context, credential string) (*domain.SessionState, error) {
	uc.setState(domain.StateExchangingSession)

	result, err := uc.exchanger.Exchange(ctx, credential)
	if err != nil {
		uc.mu.Lock()
		uc.state.Clear()
		uc.mu.Unlock()
		return nil, err
	}

	uc.mu.Lock()
	uc.state.IdentityCredential = credential
	uc.state.APIToken = result.APIToken
	uc.state.Profile = result.Profile
	uc.state.PendingEmail = ""
	uc.state.State = uc.stateForProfile(result.Profile)
	uc.mu.Unlock()

	uc.persistSession(ctx, credential, result.APIToken, result.Profile)

	uc.logger.Info("session established", "state", string(uc.snapshot().State))
	return uc.snapshot(), nil
}

// stateForProfile maps a profile snapshot to the terminal state after an
// exchange. An unknown status is logged and treated as complete so the user
// is never wedged behind a status value this client predates.
func (uc *AuthUseCase) stateForProfile(profile *domain.UserProfile) domain.AuthState {
	switch profile.Status() {
	case domain.ProfileStatusIncomplete:
		return domain.StateProfileIncomplete
	case domain.ProfileStatusComplete:
		return domain.StateReady
	default:
		uc.logger.Warn("unknown profile status, treating profile as complete",
			"user_id", profile.InternalUserID)
		return domain.StateReady
	}
}

// persistSession writes the session to the credential store. Persistence
// failures are logged and swallowed: the in-memory session is valid for this
// launch, only restore-on-next-launch is lost.
func (uc *AuthUseCase) persistSession(ctx context.Context, credential, apiToken string, profile *domain.UserProfile) {
	if err := uc.store.Write(ctx, domain.KeyAPIToken, apiToken); err != nil {
		uc.logger.Error("failed to persist API token", "error", err)
		return
	}
	if err := uc.store.Write(ctx, domain.KeyIDToken, credential); err != nil {
		uc.logger.Error("failed to persist identity credential", "error", err)
		return
	}
	uc.persistProfile(ctx, profile)
}

func (uc *AuthUseCase) persistProfile(ctx context.Context, profile *domain.UserProfile) {
	raw, err := json.Marshal(profile)
	if err != nil {
		uc.logger.Error("failed to encode profile snapshot", "error", err)
		return
	}
	if err := uc.store.Write(ctx, domain.KeyUserProfile, string(raw)); err != nil {
		uc.logger.Error("failed to persist profile snapshot", "error", err)
	}
}

// SignOut tears the session down. The provider sign-out is best-effort; the
// credential store wipe and the in-memory reset always run.
func (uc *AuthUseCase) SignOut(ctx context.Context) error {
	if err := uc.identityGateway.SignOut(ctx); err != nil && !errors.Is(err, domain.ErrNoActiveSession) {
		uc.logger.Warn("provider sign-out failed, clearing local session anyway", "error", err)
	}

	clearErr := uc.store.ClearAll(ctx)

	uc.mu.Lock()
	uc.state.Clear()
	uc.mu.Unlock()

	if clearErr != nil {
		uc.logger.Error("failed to clear credential store", "error", clearErr)
		return domain.WrapError(domain.ErrKindStorage, "failed to clear credential store", clearErr)
	}

	uc.logger.Info("signed out")
	return nil
}

// RequestPasswordReset starts the password reset flow for the email.
func (uc *AuthUseCase) RequestPasswordReset(ctx context.Context, email string) error {
	if err := uc.validator.Validate(resetRequestInput{Email: email}); err != nil {
		return err
	}

	if err := uc.identityGateway.ResetPassword(ctx, email); err != nil {
		return err
	}

	uc.mu.Lock()
	uc.state.State = domain.StateResettingPassword
	uc.state.PendingEmail = email
	uc.mu.Unlock()

	uc.logger.Info("password reset requested")
	return nil
}

// ConfirmPasswordReset completes the reset with the emailed code and the new
// password. On success the session returns to unauthenticated; the user signs
// in with the new password explicitly.
func (uc *AuthUseCase) ConfirmPasswordReset(ctx context.Context, code, newPassword string) error {
	if err := uc.validator.Validate(resetConfirmInput{Code: code, NewPassword: newPassword}); err != nil {
		return err
	}

	email, err := uc.pendingEmail()
	if err != nil {
		return err
	}

	if err := uc.identityGateway.ConfirmResetPassword(ctx, email, code, newPassword); err != nil {
		return err
	}

	uc.mu.Lock()
	uc.state.Clear()
	uc.mu.Unlock()

	uc.logger.Info("password reset confirmed")
	return nil
}

// RefreshProfile re-fetches the profile snapshot from the backend and
// re-derives the terminal state from it.
func (uc *AuthUseCase) RefreshProfile(ctx context.Context) (*domain.SessionState, error) {
	apiToken, err := uc.currentAPIToken()
	if err != nil {
		return nil, err
	}

	profile, err := uc.exchanger.FetchProfile(ctx, apiToken)
	if err != nil {
		return nil, err
	}

	uc.applyProfile(ctx, profile)
	return uc.snapshot(), nil
}

// CompleteProfile submits the profile completion form and re-derives the
// terminal state from the snapshot the backend returns.
func (uc *AuthUseCase) CompleteProfile(ctx context.Context, data *domain.ProfileData) (*domain.SessionState, error) {
	apiToken, err := uc.currentAPIToken()
	if err != nil {
		return nil, err
	}

	profile, err := uc.exchanger.CompleteProfile(ctx, apiToken, data)
	if err != nil {
		return nil, err
	}

	uc.applyProfile(ctx, profile)
	uc.logger.Info("profile completed")
	return uc.snapshot(), nil
}

func (uc *AuthUseCase) applyProfile(ctx context.Context, profile *domain.UserProfile) {
	uc.mu.Lock()
	uc.state.Profile = profile
	uc.state.State = uc.stateForProfile(profile)
	uc.mu.Unlock()

	uc.persistProfile(ctx, profile)
}

// RestoreSession rebuilds the session from the credential store on app
// launch. A missing or expired persisted session is not an error; it simply
// restores to unauthenticated. The stored API token is validated against the
// backend with a profile fetch before the session is considered live.
func (uc *AuthUseCase) RestoreSession(ctx context.Context) (*domain.SessionState, error) {
	ctx, span := otel.Tracer("auth-usecase").Start(ctx, "restore_session")
	defer span.End()

	apiToken, err := uc.store.Read(ctx, domain.KeyAPIToken)
	if err != nil {
		if errors.Is(err, domain.ErrCredentialNotFound) {
			uc.logger.Info("no persisted session")
			return uc.snapshot(), nil
		}
		return nil, domain.WrapError(domain.ErrKindStorage, "failed to read persisted session", err)
	}

	credential, err := uc.store.Read(ctx, domain.KeyIDToken)
	if err != nil && !errors.Is(err, domain.ErrCredentialNotFound) {
		return nil, domain.WrapError(domain.ErrKindStorage, "failed to read persisted credential", err)
	}

	if credential != "" {
		if expiry, expErr := domain.CredentialExpiry(credential); expErr == nil && time.Now().After(expiry) {
			uc.logger.Info("persisted credential expired, discarding session")
			return uc.discardPersisted(ctx)
		}
	}

	profile, err := uc.exchanger.FetchProfile(ctx, apiToken)
	if err != nil {
		if domain.IsKind(err, domain.ErrKindBackendExchange) {
			uc.logger.Warn("persisted session rejected by backend, discarding", "error", err)
			return uc.discardPersisted(ctx)
		}
		return nil, err
	}

	uc.mu.Lock()
	uc.state.IdentityCredential = credential
	uc.state.APIToken = apiToken
	uc.state.Profile = profile
	uc.state.State = uc.stateForProfile(profile)
	uc.mu.Unlock()

	uc.persistProfile(ctx, profile)

	uc.logger.Info("session restored", "state", string(uc.snapshot().State))
	return uc.snapshot(), nil
}

func (uc *AuthUseCase) discardPersisted(ctx context.Context) (*domain.SessionState, error) {
	if err := uc.store.ClearAll(ctx); err != nil {
		return nil, domain.WrapError(domain.ErrKindStorage, "failed to clear credential store", err)
	}
	uc.mu.Lock()
	uc.state.Clear()
	uc.mu.Unlock()
	return uc.snapshot(), nil
}

// State returns a copy of the current session state.
func (uc *AuthUseCase) State() *domain.SessionState {
	return uc.snapshot()
}

func (uc *AuthUseCase) snapshot() *domain.SessionState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	copied := *uc.state
	// Detach the profile so callers cannot mutate the cached session.
	copied.Profile = uc.state.Profile.Clone()
	return &copied
}

func (uc *AuthUseCase) setState(s domain.AuthState) {
	uc.mu.Lock()
	uc.state.State = s
	uc.mu.Unlock()
}

func (uc *AuthUseCase) pendingEmail() (string, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.state.PendingEmail == "" {
		return "", domain.NewAuthError(domain.ErrKindInvariant,
			"no pending email for this flow")
	}
	return uc.state.PendingEmail, nil
}

func (uc *AuthUseCase) currentAPIToken() (string, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.state.APIToken == "" {
		return "", domain.WrapError(domain.ErrKindInvariant,
			"operation requires an established session", domain.ErrNoActiveSession)
	}
	return uc.state.APIToken, nil
}
