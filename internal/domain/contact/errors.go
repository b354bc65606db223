package contact

import "errors"

var (
	ErrMissingField    = errors.New("missing required field")
	ErrContactNotFound = errors.New("contact not found")
)
