package service

import "errors"

var (
	// ErrEmailTaken reports a registration against an email that already has
	// an account, whether caught by the pre-check or by the store's unique
	// index at insert time.
	ErrEmailTaken = errors.New("email already exists")

	// ErrEmailNotFound reports a login for an unknown email. Kept distinct
	// from ErrInvalidPassword to preserve the original API's messages.
	ErrEmailNotFound = errors.New("email is not found")

	// ErrInvalidPassword reports a failed password check for a known account.
	ErrInvalidPassword = errors.New("invalid password")
)

// ValidationError wraps a field-rule violation so transports can surface the
// exact rule message to the caller.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }
