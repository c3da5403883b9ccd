package docket

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDocketID       = errors.New("invalid docket id")
	ErrAmbiguousParty        = errors.New("party must be exactly one of: existing id, inline draft")
	ErrEmptyCancelReason     = errors.New("cancellation reason is empty")
	ErrUnknownTransportMode  = errors.New("unknown transport mode")
	ErrUnknownBillingParty   = errors.New("unknown billing party")

	ErrDocketNotFound = errors.New("docket not found")
	ErrPartyNotFound  = errors.New("party not found")
	ErrNoInvoice      = errors.New("docket has no invoice")

	ErrAlreadyCancelled = errors.New("docket already cancelled")
	ErrNotCancelled     = errors.New("docket is not cancelled")

	// ErrNoTransition возвращают условные обновления репозитория, когда
	// накладная не в том состоянии. Сервис перечитывает запись и
	// переводит это в NotFound либо Conflict.
	ErrNoTransition = errors.New("lifecycle transition not applicable")
)
