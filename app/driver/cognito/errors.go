package cognito

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"

	"auth-client/app/domain"
)

// mapError translates a Cognito error into the domain taxonomy. Typed
// provider exceptions map to their dedicated kinds; any other provider
// response is an identity-provider unknown; everything else is transport.
func mapError(err error, op string) *domain.AuthError {
	message := fmt.Sprintf("%s failed", op)

	var usernameExists *types.UsernameExistsException
	if errors.As(err, &usernameExists) {
		return domain.WrapError(domain.ErrKindAccountAlreadyExists, message, err)
	}

	var invalidPassword *types.InvalidPasswordException
	if errors.As(err, &invalidPassword) {
		return domain.WrapError(domain.ErrKindInvalidCredentialPolicy, message, err)
	}

	var invalidParameter *types.InvalidParameterException
	if errors.As(err, &invalidParameter) {
		return domain.WrapError(domain.ErrKindInvalidCredentialPolicy, message, err)
	}

	var userNotFound *types.UserNotFoundException
	if errors.As(err, &userNotFound) {
		return domain.WrapError(domain.ErrKindUserNotFound, message, err)
	}

	var notAuthorized *types.NotAuthorizedException
	if errors.As(err, &notAuthorized) {
		return domain.WrapError(domain.ErrKindNotAuthorized, message, err)
	}

	var codeMismatch *types.CodeMismatchException
	if errors.As(err, &codeMismatch) {
		return domain.WrapError(domain.ErrKindCodeMismatch, message, err)
	}

	var codeExpired *types.ExpiredCodeException
	if errors.As(err, &codeExpired) {
		return domain.WrapError(domain.ErrKindCodeExpired, message, err)
	}

	var notConfirmed *types.UserNotConfirmedException
	if errors.As(err, &notConfirmed) {
		return domain.WrapError(domain.ErrKindUserNotConfirmed, message, err)
	}

	// Any other response the provider produced, rate limits included.
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return domain.WrapError(domain.ErrKindIdentityProvider, message, err)
	}

	// The request never produced a provider response.
	return domain.WrapError(domain.ErrKindTransport, message, err)
}
