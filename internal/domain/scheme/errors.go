package scheme

import "errors"

var (
	ErrMissingField   = errors.New("missing required field")
	ErrSchemeNotFound = errors.New("scheme not found")
)
