// Package service provides business logic for the application.
package service

import "errors"

// Error kinds. Every service error wraps exactly one of these.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidState = errors.New("invalid state")
	ErrValidation   = errors.New("validation failed")
)

// Service errors.
var (
	ErrProductNotFound    = newError(ErrNotFound, "product not found")
	ErrUserNotFound       = newError(ErrNotFound, "user not found")
	ErrCartNotFound       = newError(ErrNotFound, "cart not found for this user")
	ErrDuplicateUsername  = newError(ErrConflict, "username already taken")
	ErrDuplicateEmail     = newError(ErrConflict, "email already registered")
	ErrInvalidCredentials = newError(ErrUnauthorized, "invalid credentials")
	ErrEmptyCart          = newError(ErrInvalidState, "cart is empty")
	ErrInvalidUsername    = newError(ErrValidation, "invalid username")
	ErrInvalidEmail       = newError(ErrValidation, "invalid email address")
	ErrInvalidPassword    = newError(ErrValidation, "invalid password")
	ErrInvalidQuantity    = newError(ErrValidation, "quantity must be a positive integer")
)

// kindError is a message tagged with its error kind.
type kindError struct {
	kind error
	msg  string
}

func newError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// Kind returns the kind sentinel err belongs to, or nil for errors
// that did not originate in this package.
func Kind(err error) error {
	for _, kind := range []error{ErrNotFound, ErrConflict, ErrUnauthorized, ErrInvalidState, ErrValidation} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
