package docket

import "time"

type DocketDB struct {
	ID                 int64
	DocketNo           string
	OriginCity         string
	DestCity           string
	DistanceKm         float64
	BookingDate        time.Time
	ExpectedDate       time.Time
	ConsignorID        int64
	ConsigneeID        int64
	Status             string
	CancellationReason string
	CancelledBy        *string
	CancelledAt        *time.Time
	HasCoLoader        bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
