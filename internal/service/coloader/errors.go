package coloader

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDocketID       = errors.New("invalid docket id")
	ErrInvalidCoLoaderID     = errors.New("invalid co-loader id")
	ErrDocketNotFound        = errors.New("docket not found")
	ErrDocketCancelled       = errors.New("docket is cancelled")
	ErrAlreadyLinked         = errors.New("co-loader already linked to docket")
	ErrCoLoaderNotFound      = errors.New("co-loader not found")
)
