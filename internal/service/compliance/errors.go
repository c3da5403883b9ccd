package compliance

import "errors"

var (
	ErrInvalidInvoiceID = errors.New("invalid invoice id")
	ErrInvalidExpiry    = errors.New("invalid expiry date")
	ErrNoEwayBill       = errors.New("invoice has no e-way bill")

	ErrInvoiceNotFound = errors.New("invoice not found")
)
