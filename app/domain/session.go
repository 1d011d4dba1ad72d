package domain

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthState is the orchestrator's position in the session state machine.
type AuthState string

const (
	StateUnauthenticated      AuthState = "UNAUTHENTICATED"
	StateSigningUp            AuthState = "SIGNING_UP"
	StateAwaitingConfirmation AuthState = "AWAITING_CONFIRMATION"
	StateConfirmed            AuthState = "CONFIRMED"
	StateSigningIn            AuthState = "SIGNING_IN"
	StateExchangingSession    AuthState = "EXCHANGING_SESSION"
	StateProfileIncomplete    AuthState = "PROFILE_INCOMPLETE"
	StateReady                AuthState = "READY"
	StateResettingPassword    AuthState = "RESETTING_PASSWORD"
)

// Credential store keys. ClearAll removes these and any key a previous
// schema version may have written.
const (
	KeyAPIToken    = "api_token"
	KeyIDToken     = "id_token"
	KeyUserProfile = "user_profile"
)

// SessionState is the process-wide session value owned by the orchestrator.
// Its lifecycle is tied to app launch and sign-out. The API token is only
// ever set after a successful identity-provider verification followed by a
// successful backend exchange.
type SessionState struct {
	State              AuthState
	IdentityCredential string
	APIToken           string
	Profile            *UserProfile

	// PendingEmail is the address a confirmation or reset code was sent
	// to. Set while a sign-up confirmation or password reset is open.
	PendingEmail string
}

// NewSessionState creates a fresh unauthenticated session.
func NewSessionState() *SessionState {
	return &SessionState{State: StateUnauthenticated}
}

// Clear resets the session to its unauthenticated zero state.
func (s *SessionState) Clear() {
	s.State = StateUnauthenticated
	s.IdentityCredential = ""
	s.APIToken = ""
	s.Profile = nil
	s.PendingEmail = ""
}

// IsAuthenticated reports whether a backend session has been established.
func (s *SessionState) IsAuthenticated() bool {
	return s.APIToken != "" && (s.State == StateReady || s.State == StateProfileIncomplete)
}

// CredentialExpiry extracts the expiry of an identity credential from its
// `exp` claim. The token is not verified here; signature verification is the
// identity provider's and the backend's job.
func CredentialExpiry(credential string) (time.Time, error) {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(credential, &claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse identity credential: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("identity credential carries no expiry claim")
	}
	return claims.ExpiresAt.Time, nil
}
