package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"auth-client/app/domain"
)

func TestRequestPasswordReset(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.gateway.EXPECT().ResetPassword(gomock.Any(), "a@example.com").Return(nil)

	err := uc.RequestPasswordReset(context.Background(), "a@example.com")
	require.NoError(t, err)

	state := uc.State()
	assert.Equal(t, domain.StateResettingPassword, state.State)
	assert.Equal(t, "a@example.com", state.PendingEmail)
}

func TestRequestPasswordReset_InvalidEmailNeverReachesProvider(t *testing.T) {
	uc, _ := newTestUseCase(t)

	err := uc.RequestPasswordReset(context.Background(), "not-an-email")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestConfirmPasswordReset_ValidationRunsBeforeAnyNetworkCall(t *testing.T) {
	tests := []struct {
		name        string
		code        string
		newPassword string
	}{
		{name: "short code", code: "12345", newPassword: "newpassword1"},
		{name: "short password", code: "123456", newPassword: "short"},
		{name: "both empty", code: "", newPassword: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(t)

			err := uc.ConfirmPasswordReset(context.Background(), tt.code, tt.newPassword)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
		})
	}
}

func TestConfirmPasswordReset_Success(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.gateway.EXPECT().ResetPassword(gomock.Any(), "a@example.com").Return(nil)
	m.gateway.EXPECT().
		ConfirmResetPassword(gomock.Any(), "a@example.com", "123456", "newpassword1").
		Return(nil)

	err := uc.RequestPasswordReset(context.Background(), "a@example.com")
	require.NoError(t, err)

	err = uc.ConfirmPasswordReset(context.Background(), "123456", "newpassword1")
	require.NoError(t, err)

	// The reset ends signed out; the user signs in with the new password.
	state := uc.State()
	assert.Equal(t, domain.StateUnauthenticated, state.State)
	assert.Empty(t, state.PendingEmail)
}

func TestConfirmPasswordReset_WithoutPendingEmail(t *testing.T) {
	uc, _ := newTestUseCase(t)

	err := uc.ConfirmPasswordReset(context.Background(), "123456", "newpassword1")
	require.Error(t, err)
	assert.Equal(t, domain.ErrKindInvariant, domain.KindOf(err))
}

func TestConfirmPasswordReset_ExpiredCode(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.gateway.EXPECT().ResetPassword(gomock.Any(), "a@example.com").Return(nil)
	m.gateway.EXPECT().
		ConfirmResetPassword(gomock.Any(), "a@example.com", "123456", "newpassword1").
		Return(domain.NewAuthError(domain.ErrKindCodeExpired, "stale code"))

	err := uc.RequestPasswordReset(context.Background(), "a@example.com")
	require.NoError(t, err)

	err = uc.ConfirmPasswordReset(context.Background(), "123456", "newpassword1")
	require.Error(t, err)
	assert.Equal(t, domain.ErrKindCodeExpired, domain.KindOf(err))
	// The flow stays open for another attempt.
	assert.Equal(t, domain.StateResettingPassword, uc.State().State)
}
