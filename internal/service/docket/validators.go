package docket

import (
	"strings"

	"freight/internal/entities"
)

// Закрытые перечисления брони. Значение вне множества отклоняется до
// выделения номера и любых записей, а не check-констрейнтом БД.
var knownTransportModes = map[entities.TransportMode]struct{}{
	entities.ModeRoad:    {},
	entities.ModeRail:    {},
	entities.ModeExpress: {},
}

var knownBillingParties = map[entities.BillingParty]struct{}{
	entities.BillConsignor: {},
	entities.BillConsignee: {},
	entities.BillThird:     {},
}

func validateDraft(draft entities.DocketDraft) error {
	if strings.TrimSpace(draft.OriginCity) == "" ||
		strings.TrimSpace(draft.DestCity) == "" ||
		draft.BookingDate.IsZero() ||
		draft.ExpectedDate.IsZero() {
		return ErrMissingRequiredFields
	}

	if draft.Booking.Mode == "" || draft.Booking.BillingParty == "" {
		return ErrMissingRequiredFields
	}
	if _, ok := knownTransportModes[draft.Booking.Mode]; !ok {
		return ErrUnknownTransportMode
	}
	if _, ok := knownBillingParties[draft.Booking.BillingParty]; !ok {
		return ErrUnknownBillingParty
	}

	if err := validatePartyChoice(draft.Consignor); err != nil {
		return err
	}
	return validatePartyChoice(draft.Consignee)
}

// Выбор между существующей стороной и новой записью всегда явный:
// ровно одно из двух полей, по содержимому ничего не угадываем.
func validatePartyChoice(choice entities.PartyChoice) error {
	if (choice.Ref == nil) == (choice.Draft == nil) {
		return ErrAmbiguousParty
	}
	if choice.Draft != nil && strings.TrimSpace(choice.Draft.Name) == "" {
		return ErrMissingRequiredFields
	}
	return nil
}

func isValidCancelReason(reason string) bool {
	return strings.TrimSpace(reason) != ""
}
