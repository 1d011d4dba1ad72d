package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"auth-client/app/domain"
	"auth-client/app/mocks"
	"auth-client/app/utils/logger"
	"auth-client/app/utils/validator"
)

func testLogger() *slog.Logger {
	l, _ := logger.NewWithWriter("debug", io.Discard)
	return l
}

type useCaseMocks struct {
	gateway   *mocks.MockIdentityGateway
	exchanger *mocks.MockSessionExchanger
	store     *mocks.MockCredentialStore
}

func newTestUseCase(t *testing.T) (*AuthUseCase, *useCaseMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &useCaseMocks{
		gateway:   mocks.NewMockIdentityGateway(ctrl),
		exchanger: mocks.NewMockSessionExchanger(ctrl),
		store:     mocks.NewMockCredentialStore(ctrl),
	}
	uc := NewAuthUseCase(m.gateway, m.exchanger, m.store, validator.New(), testLogger())
	return uc, m
}

func TestSubmitSignUp_ValidationRunsBeforeAnyNetworkCall(t *testing.T) {
	tests := []struct {
		name            string
		email           string
		password        string
		confirmPassword string
	}{
		{
			name:            "empty email",
			email:           "",
			password:        "password1",
			confirmPassword: "password1",
		},
		{
			name:            "email without at sign",
			email:           "not-an-email",
			password:        "password1",
			confirmPassword: "password1",
		},
		{
			name:            "empty password",
			email:           "a@example.com",
			password:        "",
			confirmPassword: "",
		},
		{
			name:            "password mismatch",
			email:           "a@example.com",
			password:        "password1",
			confirmPassword: "password2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations registered: any gateway call fails the test.
			uc, _ := newTestUseCase(t)

			_, err := uc.SubmitSignUp(context.Background(), tt.email, tt.password, tt.confirmPassword)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
			assert.Equal(t, domain.StateUnauthenticated, uc.State().State)
		})
	}
}

func TestSubmitSignUp_NeedsConfirmation(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.gateway.EXPECT().
		SignUp(gomock.Any(), "a@example.com", "password1").
		Return(&domain.SignUpResult{NeedsConfirmation: true, Destination: "a***@example.com"}, nil)

	result, err := uc.SubmitSignUp(context.Background(), "a@example.com", "password1", "password1")
	require.NoError(t, err)
	assert.True(t, result.NeedsConfirmation)

	state := uc.State()
	assert.Equal(t, domain.StateAwaitingConfirmation, state.State)
	assert.Equal(t, "a@example.com", state.PendingEmail)
}

func TestSubmitSignUp_AccountAlreadyExists(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.gateway.EXPECT().
		SignUp(gomock.Any(), "a@example.com", "password1").
		Return(nil, domain.NewAuthError(domain.ErrKindAccountAlreadyExists, "account exists"))

	_, err := uc.SubmitSignUp(context.Background(), "a@example.com", "password1", "password1")
	require.Error(t, err)
	assert.Equal(t, domain.ErrKindAccountAlreadyExists, domain.KindOf(err))
	assert.Equal(t, domain.StateUnauthenticated, uc.State().State)
}

func TestConfirmSignUp_WrongLengthCodeNeverReachesProvider(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{name: "five digits", code: "12345"},
		{name: "seven digits", code: "1234567"},
		{name: "empty", code: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(t)

			err := uc.ConfirmSignUp(context.Background(), tt.code)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
		})
	}
}

func TestConfirmSignUp_Success(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.gateway.EXPECT().
		SignUp(gomock.Any(), "a@example.com", "password1").
		Return(&domain.SignUpResult{NeedsConfirmation: true}, nil)
	m.gateway.EXPECT().
		ConfirmSignUp(gomock.Any(), "a@example.com", "123456").
		Return(nil)

	_, err := uc.SubmitSignUp(context.Background(), "a@example.com", "password1", "password1")
	require.NoError(t, err)

	err = uc.ConfirmSignUp(context.Background(), "123456")
	require.NoError(t, err)
	assert.Equal(t, domain.StateConfirmed, uc.State().State)
}

func TestConfirmSignUp_WithoutPendingEmail(t *testing.T) {
	uc, _ := newTestUseCase(t)

	err := uc.ConfirmSignUp(context.Background(), "123456")
	require.Error(t, err)
	assert.Equal(t, domain.ErrKindInvariant, domain.KindOf(err))
}

func TestConfirmSignUp_CodeMismatchKeepsAwaitingState(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.gateway.EXPECT().
		SignUp(gomock.Any(), "a@example.com", "password1").
		Return(&domain.SignUpResult{NeedsConfirmation: true}, nil)
	m.gateway.EXPECT().
		ConfirmSignUp(gomock.Any(), "a@example.com", "654321").
		Return(domain.NewAuthError(domain.ErrKindCodeMismatch, "wrong code"))

	_, err := uc.SubmitSignUp(context.Background(), "a@example.com", "password1", "password1")
	require.NoError(t, err)

	err = uc.ConfirmSignUp(context.Background(), "654321")
	require.Error(t, err)
	assert.Equal(t, domain.ErrKindCodeMismatch, domain.KindOf(err))
	assert.Equal(t, domain.StateAwaitingConfirmation, uc.State().State)
}

func TestResendConfirmationCode(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.gateway.EXPECT().
		SignUp(gomock.Any(), "a@example.com", "password1").
		Return(&domain.SignUpResult{NeedsConfirmation: true}, nil)
	m.gateway.EXPECT().
		ResendConfirmationCode(gomock.Any(), "a@example.com").
		Return(nil)

	_, err := uc.SubmitSignUp(context.Background(), "a@example.com", "password1", "password1")
	require.NoError(t, err)

	err = uc.ResendConfirmationCode(context.Background())
	require.NoError(t, err)
}

func TestResendConfirmationCode_WithoutPendingEmail(t *testing.T) {
	uc, _ := newTestUseCase(t)

	err := uc.ResendConfirmationCode(context.Background())
	require.Error(t, err)
	assert.Equal(t, domain.ErrKindInvariant, domain.KindOf(err))
}
