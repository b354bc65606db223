package grievance

import "errors"

var (
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidPriority   = errors.New("invalid priority")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrGrievanceNotFound = errors.New("grievance not found")
)
