package domain

import "fmt"

// AppType is the client-type discriminator the backend uses to decide which
// role a first-time login creates.
type AppType string

const (
	AppTypePatient AppType = "PATIENT"
	AppTypeDoctor  AppType = "DOCTOR"
)

// Validate checks that the app type is one the backend recognizes.
func (a AppType) Validate() error {
	switch a {
	case AppTypePatient, AppTypeDoctor:
		return nil
	default:
		return fmt.Errorf("invalid app type: %q (must be PATIENT or DOCTOR)", a)
	}
}

// NextStep is the advisory step the identity provider asks for after a
// sign-up or sign-in attempt. It is surfaced to the caller as a value, not
// as additional concurrency.
type NextStep string

const (
	// NextStepDone means the attempt completed with no further step.
	NextStepDone NextStep = "DONE"
	// NextStepConfirmSignUp means the account still needs its
	// confirmation code.
	NextStepConfirmSignUp NextStep = "CONFIRM_SIGN_UP"
	// NextStepUnsupported means the provider asked for a step this
	// client does not implement (MFA challenges and the like).
	NextStepUnsupported NextStep = "UNSUPPORTED"
)

// SignUpResult is the outcome of an identity-provider sign-up call.
type SignUpResult struct {
	// NeedsConfirmation is true when the provider sent a confirmation
	// code that must be submitted before the account can sign in.
	NeedsConfirmation bool
	// Destination is the (masked) contact address the code went to.
	Destination string
}

// SignInResult is the outcome of an identity-provider sign-in call.
type SignInResult struct {
	SignedIn bool
	Step     NextStep
	// StepName carries the provider's name for an unsupported step, for
	// diagnostics only.
	StepName string
}

// ExchangeResult is the outcome of the backend session exchange.
type ExchangeResult struct {
	APIToken string       `json:"api_token"`
	Profile  *UserProfile `json:"user_profile"`
}
