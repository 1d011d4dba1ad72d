package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"auth-client/app/domain"
)

// Validator wraps the go-playground validator with the auth flow rules.
type Validator struct {
	validator *validator.Validate
}

// New creates a new validator instance with custom rules
func New() *Validator {
	validate := validator.New()

	registerCustomValidators(validate)

	// Use JSON field names for validation error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validator: validate,
	}
}

// Validate validates a struct. Failures come back as a single
// domain.AuthError of kind VALIDATION naming the first offending field, so
// they surface form-field-local and before any network call.
func (v *Validator) Validate(i interface{}) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return domain.NewValidationError("", "validation failed")
	}

	first := errs[0]
	return domain.NewValidationError(first.Field(), messageFor(first))
}

// messageFor maps a failed rule to a user-facing, field-local message.
func messageFor(err validator.FieldError) string {
	field := err.Field()
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "login_email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "confirmation_code":
		return "confirmation code must be exactly 6 characters"
	case "reset_code":
		return "confirmation code must be at least 6 characters"
	case "reset_password":
		return "password must be at least 8 characters"
	case "eqfield":
		return "passwords do not match"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, err.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// registerCustomValidators registers the auth flow validation rules.
func registerCustomValidators(validate *validator.Validate) {
	// Login email: non-empty and contains '@'. Deliberately weaker than a
	// full RFC check; the identity provider is the authority on format.
	validate.RegisterValidation("login_email", func(fl validator.FieldLevel) bool {
		email := fl.Field().String()
		return email != "" && strings.Contains(email, "@")
	})

	// Sign-up confirmation codes are exactly 6 characters.
	validate.RegisterValidation("confirmation_code", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) == 6
	})

	// Password reset codes are at least 6 characters.
	validate.RegisterValidation("reset_code", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) >= 6
	})

	// Passwords chosen during reset must be at least 8 characters.
	validate.RegisterValidation("reset_password", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) >= 8
	})
}
