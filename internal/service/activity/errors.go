package activity

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDocketID       = errors.New("invalid docket id")
	ErrInvalidActivityID     = errors.New("invalid activity id")
	ErrUnknownStatusCode     = errors.New("unknown activity status code")

	ErrActivityNotFound = errors.New("activity not found")
	ErrNoActivities     = errors.New("docket has no activities")
)
