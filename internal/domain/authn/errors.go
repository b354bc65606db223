package authn

import "errors"

var (
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidRole        = errors.New("invalid role")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotFound    = errors.New("account not found")
)
