package domain

import "errors"

// Shared error taxonomy. Services wrap these with fmt.Errorf("%w: ...") so
// callers classify with errors.Is while keeping the detail.
var (
	ErrValidation             = errors.New("validation failed")
	ErrDuplicateEmail         = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrUnauthenticated        = errors.New("no active session")
	ErrAuthorization          = errors.New("operation not permitted for this role")
	ErrNotFound               = errors.New("record not found")
	ErrInvalidStateTransition = errors.New("illegal status transition")
	ErrConflict               = errors.New("concurrent update conflict")
)
