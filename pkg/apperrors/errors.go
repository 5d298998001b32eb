package apperrors

import "errors"

// Sentinel errors forming the domain taxonomy. Services wrap these with
// context via the constructors below; handlers branch on errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
)

// Error carries a user-facing message on top of a sentinel.
type Error struct {
	Err     error
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewNotFound(message string) error {
	return &Error{Err: ErrNotFound, Message: message}
}

func NewConflict(message string) error {
	return &Error{Err: ErrConflict, Message: message}
}

func NewValidation(message string) error {
	return &Error{Err: ErrValidation, Message: message}
}

func NewUnauthorized(message string) error {
	return &Error{Err: ErrUnauthorized, Message: message}
}
