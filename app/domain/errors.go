package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure an auth operation can surface.
// Callers branch on the kind, never on concrete provider error types.
type ErrorKind string

const (
	// Local validation failures. No network call was made.
	ErrKindValidation ErrorKind = "VALIDATION"

	// Identity provider failures, one kind per provider condition.
	ErrKindAccountAlreadyExists    ErrorKind = "ACCOUNT_ALREADY_EXISTS"
	ErrKindInvalidCredentialPolicy ErrorKind = "INVALID_CREDENTIAL_POLICY"
	ErrKindUserNotFound            ErrorKind = "USER_NOT_FOUND"
	ErrKindNotAuthorized           ErrorKind = "NOT_AUTHORIZED"
	ErrKindCodeMismatch            ErrorKind = "CODE_MISMATCH"
	ErrKindCodeExpired             ErrorKind = "CODE_EXPIRED"
	ErrKindUserNotConfirmed        ErrorKind = "USER_NOT_CONFIRMED"
	ErrKindUnsupportedStep         ErrorKind = "UNSUPPORTED_STEP"
	ErrKindIdentityProvider        ErrorKind = "IDENTITY_PROVIDER"

	// Backend exchange and profile call failures (non-2xx responses).
	ErrKindBackendExchange ErrorKind = "BACKEND_EXCHANGE"

	// Network or connectivity failures at any step.
	ErrKindTransport ErrorKind = "TRANSPORT"

	// Broken internal invariants. These indicate a programming error,
	// not a condition the user can fix.
	ErrKindInvariant ErrorKind = "INVARIANT"

	// Local credential store failures.
	ErrKindStorage ErrorKind = "STORAGE"
)

// AuthError is the tagged error type returned by every auth operation.
type AuthError struct {
	Kind    ErrorKind
	Field   string // set for validation errors, names the offending field
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// UserMessage returns the message shown in the transient UI notification.
func (e *AuthError) UserMessage() string {
	switch e.Kind {
	case ErrKindValidation:
		return e.Message
	case ErrKindAccountAlreadyExists:
		return "an account with this email already exists"
	case ErrKindInvalidCredentialPolicy:
		return "the password does not meet the security requirements"
	case ErrKindUserNotFound:
		return "no account found for this email"
	case ErrKindNotAuthorized:
		return "incorrect email or password"
	case ErrKindCodeMismatch:
		return "the confirmation code is incorrect"
	case ErrKindCodeExpired:
		return "the confirmation code has expired, request a new one"
	case ErrKindUserNotConfirmed:
		return "this account has not been confirmed yet"
	case ErrKindUnsupportedStep:
		return "this sign-in requires a step the app does not support"
	case ErrKindBackendExchange, ErrKindTransport:
		return e.Message
	default:
		return "something went wrong, please try again"
	}
}

// NewAuthError creates a new AuthError of the given kind.
func NewAuthError(kind ErrorKind, message string) *AuthError {
	return &AuthError{Kind: kind, Message: message}
}

// NewValidationError creates a field-local validation error.
func NewValidationError(field, message string) *AuthError {
	return &AuthError{Kind: ErrKindValidation, Field: field, Message: message}
}

// WrapError wraps a cause into an AuthError of the given kind.
func WrapError(kind ErrorKind, message string, cause error) *AuthError {
	return &AuthError{Kind: kind, Message: message, Cause: cause}
}

// KindOf extracts the ErrorKind from an error chain. Errors that carry no
// AuthError anywhere in the chain are reported as identity-provider unknowns.
func KindOf(err error) ErrorKind {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Kind
	}
	return ErrKindIdentityProvider
}

// IsKind reports whether the error chain carries an AuthError of the kind.
func IsKind(err error, kind ErrorKind) bool {
	var authErr *AuthError
	return errors.As(err, &authErr) && authErr.Kind == kind
}

// IsValidation reports whether the error is a local validation failure.
func IsValidation(err error) bool {
	return IsKind(err, ErrKindValidation)
}

// AsAuthError converts an error to an AuthError if possible.
func AsAuthError(err error) (*AuthError, bool) {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr, true
	}
	return nil, false
}

// Sentinel errors shared between drivers and the orchestrator.
var (
	// ErrNoActiveSession is returned by the identity driver when an
	// operation needs a signed-in session and none exists.
	ErrNoActiveSession = errors.New("no active identity session")

	// ErrCredentialNotFound is returned by the credential store when a
	// key has never been written or was cleared.
	ErrCredentialNotFound = errors.New("credential not found")
)
