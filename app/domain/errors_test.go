package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{
			name: "direct auth error",
			err:  NewAuthError(ErrKindCodeMismatch, "wrong code"),
			want: ErrKindCodeMismatch,
		},
		{
			name: "wrapped auth error keeps its kind",
			err:  fmt.Errorf("confirm sign-up: %w", NewAuthError(ErrKindCodeExpired, "expired")),
			want: ErrKindCodeExpired,
		},
		{
			name: "plain error defaults to identity provider",
			err:  errors.New("boom"),
			want: ErrKindIdentityProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(NewValidationError("email", "email must contain @")))
	assert.False(t, IsValidation(NewAuthError(ErrKindTransport, "connection refused")))
	assert.False(t, IsValidation(errors.New("plain")))
}

func TestAuthError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := WrapError(ErrKindBackendExchange, "exchange failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "exchange failed")
	assert.Contains(t, err.Error(), "root cause")
}

func TestAuthError_UserMessage(t *testing.T) {
	validation := NewValidationError("code", "confirmation code must be 6 characters")
	assert.Equal(t, "confirmation code must be 6 characters", validation.UserMessage())

	exchange := NewAuthError(ErrKindBackendExchange, "token expired")
	assert.Equal(t, "token expired", exchange.UserMessage())

	notAuthorized := NewAuthError(ErrKindNotAuthorized, "NotAuthorizedException: raw provider text")
	assert.Equal(t, "incorrect email or password", notAuthorized.UserMessage())
}
