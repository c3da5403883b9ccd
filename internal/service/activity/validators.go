package activity

import (
	"strings"

	"freight/internal/entities"
)

var knownStatusCodes = map[entities.ActivityStatusCode]struct{}{
	entities.ActivityBooked:         {},
	entities.ActivityInTransit:      {},
	entities.ActivityOutForDelivery: {},
	entities.ActivityDelivered:      {},
	entities.ActivityUndelivered:    {},
	entities.ActivityRTO:            {},
}

func isKnownStatusCode(code entities.ActivityStatusCode) bool {
	_, ok := knownStatusCodes[code]
	return ok
}

func isValidLocation(location string) bool {
	return strings.TrimSpace(location) != ""
}
