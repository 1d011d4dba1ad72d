package cognito

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"auth-client/app/domain"
)

// cognitoAPI is the slice of the Cognito IDP API the adapter uses. Tests
// substitute a fake; production wires *cognitoidentityprovider.Client.
type cognitoAPI interface {
	SignUp(ctx context.Context, params *cognitoidentityprovider.SignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.SignUpOutput, error)
	ConfirmSignUp(ctx context.Context, params *cognitoidentityprovider.ConfirmSignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ConfirmSignUpOutput, error)
	ResendConfirmationCode(ctx context.Context, params *cognitoidentityprovider.ResendConfirmationCodeInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ResendConfirmationCodeOutput, error)
	InitiateAuth(ctx context.Context, params *cognitoidentityprovider.InitiateAuthInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.InitiateAuthOutput, error)
	GlobalSignOut(ctx context.Context, params *cognitoidentityprovider.GlobalSignOutInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.GlobalSignOutOutput, error)
	ForgotPassword(ctx context.Context, params *cognitoidentityprovider.ForgotPasswordInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ForgotPasswordOutput, error)
	ConfirmForgotPassword(ctx context.Context, params *cognitoidentityprovider.ConfirmForgotPasswordInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ConfirmForgotPasswordOutput, error)
}

// Adapter implements port.IdentityClient over the Cognito user pool API.
// It keeps the latest authentication result in memory so the current
// credential and the sign-out call need no extra network round-trips.
type Adapter struct {
	api      cognitoAPI
	clientID string
	logger   *slog.Logger

	mu          sync.Mutex
	idToken     string
	accessToken string
	expiresAt   time.Time
}

// NewAdapter creates a new adapter over the Cognito client.
func NewAdapter(client *Client, logger *slog.Logger) *Adapter {
	return &Adapter{
		api:      client.API(),
		clientID: client.ClientID(),
		logger:   logger.With("component", "cognito_adapter"),
	}
}

// SignUp registers a new account. The provider decides whether a
// confirmation code is required.
func (a *Adapter) SignUp(ctx context.Context, email, password string) (*domain.SignUpResult, error) {
	out, err := a.api.SignUp(ctx, &cognitoidentityprovider.SignUpInput{
		ClientId: aws.String(a.clientID),
		Username: aws.String(email),
		Password: aws.String(password),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(email)},
		},
	})
	if err != nil {
		return nil, mapError(err, "sign_up")
	}

	result := &domain.SignUpResult{NeedsConfirmation: !out.UserConfirmed}
	if out.CodeDeliveryDetails != nil {
		result.Destination = aws.ToString(out.CodeDeliveryDetails.Destination)
	}
	return result, nil
}

// ConfirmSignUp submits a sign-up confirmation code.
func (a *Adapter) ConfirmSignUp(ctx context.Context, email, code string) error {
	_, err := a.api.ConfirmSignUp(ctx, &cognitoidentityprovider.ConfirmSignUpInput{
		ClientId:         aws.String(a.clientID),
		Username:         aws.String(email),
		ConfirmationCode: aws.String(code),
	})
	if err != nil {
		return mapError(err, "confirm_sign_up")
	}
	return nil
}

// ResendConfirmationCode asks the provider to send a fresh code.
func (a *Adapter) ResendConfirmationCode(ctx context.Context, email string) error {
	_, err := a.api.ResendConfirmationCode(ctx, &cognitoidentityprovider.ResendConfirmationCodeInput{
		ClientId: aws.String(a.clientID),
		Username: aws.String(email),
	})
	if err != nil {
		return mapError(err, "resend_confirmation_code")
	}
	return nil
}

// SignIn authenticates with email and password. An unconfirmed account is
// reported as a next-step outcome, not an error; any provider challenge this
// client does not implement is reported as an unsupported step.
func (a *Adapter) SignIn(ctx context.Context, email, password string) (*domain.SignInResult, error) {
	out, err := a.api.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(a.clientID),
		AuthParameters: map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
	})
	if err != nil {
		mapped := mapError(err, "initiate_auth")
		if mapped.Kind == domain.ErrKindUserNotConfirmed {
			return &domain.SignInResult{SignedIn: false, Step: domain.NextStepConfirmSignUp}, nil
		}
		return nil, mapped
	}

	if out.ChallengeName != "" {
		a.logger.Warn("provider asked for an unsupported challenge",
			"challenge", string(out.ChallengeName))
		return &domain.SignInResult{
			SignedIn: false,
			Step:     domain.NextStepUnsupported,
			StepName: string(out.ChallengeName),
		}, nil
	}

	if out.AuthenticationResult == nil || aws.ToString(out.AuthenticationResult.IdToken) == "" {
		return nil, domain.NewAuthError(domain.ErrKindIdentityProvider, "provider returned no tokens")
	}

	a.storeTokens(out.AuthenticationResult)
	return &domain.SignInResult{SignedIn: true, Step: domain.NextStepDone}, nil
}

// SignOut invalidates the provider session. Without an active session it
// returns domain.ErrNoActiveSession; callers decide whether that matters.
// Cached tokens are dropped regardless of the remote outcome.
func (a *Adapter) SignOut(ctx context.Context) error {
	a.mu.Lock()
	accessToken := a.accessToken
	a.mu.Unlock()

	defer a.clearTokens()

	if accessToken == "" {
		return domain.ErrNoActiveSession
	}

	_, err := a.api.GlobalSignOut(ctx, &cognitoidentityprovider.GlobalSignOutInput{
		AccessToken: aws.String(accessToken),
	})
	if err != nil {
		return mapError(err, "global_sign_out")
	}
	return nil
}

// FetchCurrentCredential returns the identity credential of the active
// session, or domain.ErrNoActiveSession when none exists.
func (a *Adapter) FetchCurrentCredential(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.idToken == "" {
		return "", domain.ErrNoActiveSession
	}
	if !a.expiresAt.IsZero() && time.Now().After(a.expiresAt) {
		return "", domain.ErrNoActiveSession
	}
	return a.idToken, nil
}

// ResetPassword starts the password reset flow for the account.
func (a *Adapter) ResetPassword(ctx context.Context, email string) error {
	_, err := a.api.ForgotPassword(ctx, &cognitoidentityprovider.ForgotPasswordInput{
		ClientId: aws.String(a.clientID),
		Username: aws.String(email),
	})
	if err != nil {
		return mapError(err, "forgot_password")
	}
	return nil
}

// ConfirmResetPassword completes the password reset with the emailed code.
func (a *Adapter) ConfirmResetPassword(ctx context.Context, email, code, newPassword string) error {
	_, err := a.api.ConfirmForgotPassword(ctx, &cognitoidentityprovider.ConfirmForgotPasswordInput{
		ClientId:         aws.String(a.clientID),
		Username:         aws.String(email),
		ConfirmationCode: aws.String(code),
		Password:         aws.String(newPassword),
	})
	if err != nil {
		return mapError(err, "confirm_forgot_password")
	}
	return nil
}

func (a *Adapter) storeTokens(result *types.AuthenticationResultType) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.idToken = aws.ToString(result.IdToken)
	a.accessToken = aws.ToString(result.AccessToken)
	if result.ExpiresIn > 0 {
		a.expiresAt = time.Now().Add(time.Duration(result.ExpiresIn) * time.Second)
	} else {
		a.expiresAt = time.Time{}
	}
}

func (a *Adapter) clearTokens() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.idToken = ""
	a.accessToken = ""
	a.expiresAt = time.Time{}
}
