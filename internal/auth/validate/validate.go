// Package validate holds the input rules for the credential endpoints.
// Validation is pure: no I/O, no clock, and for a given input the same
// message comes back every time. When several rules fail, the message of the
// first failing field (in declaration order) wins, since clients key off it.
package validate

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Bounds for the credential fields. The password ceiling is bcrypt's input
// limit of 72 bytes; anything longer would be silently truncated by the
// hash, so it is rejected up front instead.
const (
	NameMaxLen     = 100
	EmailMinLen    = 6
	EmailMaxLen    = 254
	PasswordMinLen = 6
	PasswordMaxLen = 72
)

// RegisterInput is the registration request body.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput is the login request body.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration validates a registration request. The returned error message
// is safe to surface verbatim to the caller.
func Registration(in RegisterInput) error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, NameMaxLen)),
		validation.Field(&in.Email, validation.Required, validation.Length(EmailMinLen, EmailMaxLen), is.Email),
		validation.Field(&in.Password, validation.Required, validation.Length(PasswordMinLen, PasswordMaxLen)),
	)
	return firstError(err, "name", "email", "password")
}

// Login validates a login request. Only presence and email syntax are
// checked here; password policy is a registration concern.
func Login(in LoginInput) error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Email, validation.Required, is.Email),
		validation.Field(&in.Password, validation.Required),
	)
	return firstError(err, "email", "password")
}

// firstError reduces an ozzo field-error map to the first violation in the
// given field order so multi-error inputs produce a stable message.
func firstError(err error, fields ...string) error {
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}

	for _, field := range fields {
		if fieldErr, ok := errs[field]; ok && fieldErr != nil {
			return errors.New(field + ": " + fieldErr.Error())
		}
	}
	return err
}
