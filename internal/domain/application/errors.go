package application

import "errors"

var (
	ErrMissingField        = errors.New("missing required field")
	ErrInvalidStatus       = errors.New("invalid application status")
	ErrApplicationNotFound = errors.New("application not found")
)
