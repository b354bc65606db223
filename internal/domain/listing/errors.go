package listing

import "errors"

var (
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidType     = errors.New("invalid listing type")
	ErrListingNotFound = errors.New("listing not found")
)
