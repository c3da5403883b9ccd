package entities

import "time"

type TransportMode string

const (
	ModeRoad    TransportMode = "road"
	ModeRail    TransportMode = "rail"
	ModeExpress TransportMode = "express"
)

func (m TransportMode) String() string {
	return string(m)
}

type BillingParty string

const (
	BillConsignor BillingParty = "consignor"
	BillConsignee BillingParty = "consignee"
	BillThird     BillingParty = "third_party"
)

func (b BillingParty) String() string {
	return string(b)
}

// BookingInfo - операционные данные перевозки, одна запись на накладную,
// создается вместе с ней.
type BookingInfo struct {
	ID           int64
	DocketID     int64
	Mode         TransportMode
	BillingParty BillingParty
	LoadType     string
	CreatedAt    time.Time
}

type BookingDraft struct {
	Mode         TransportMode
	BillingParty BillingParty
	LoadType     string
}
