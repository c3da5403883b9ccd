package entities

import (
	"fmt"
	"time"
)

// Docket - одна грузовая накладная (одна перевозка).
type Docket struct {
	ID           int64
	DocketNo     string
	OriginCity   string
	DestCity     string
	DistanceKm   float64
	BookingDate  time.Time
	ExpectedDate time.Time

	ConsignorID int64
	ConsigneeID int64

	Status             DocketStatusType
	CancellationReason string
	CancelledBy        *string
	CancelledAt        *time.Time

	HasCoLoader bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DocketStatusType string

const (
	DocketActive    DocketStatusType = "active"
	DocketCancelled DocketStatusType = "cancelled"
)

func (s DocketStatusType) String() string {
	return string(s)
}

// DocketNumber - выданный аллокатором идентификатор накладной.
type DocketNumber struct {
	Prefix string
	Number int64
}

func (n DocketNumber) String() string {
	return fmt.Sprintf("%s%d", n.Prefix, n.Number)
}

// PartyRef либо PartyDraft, ровно один из двух: ссылка на существующую
// сторону или данные для создания новой. Выбор явный, по полям не угадываем.
type PartyChoice struct {
	Ref   *PartyRef
	Draft *PartyDraft
}

type PartyRef struct {
	ID int64
}

// DocketDraft - входные данные на создание всей связки записей.
type DocketDraft struct {
	OriginCity   string
	DestCity     string
	BookingDate  time.Time
	ExpectedDate time.Time

	Consignor PartyChoice
	Consignee PartyChoice

	Booking BookingDraft
	Invoice *InvoiceDraft
}

// DocketAggregate - собранная накладная со всеми связанными записями.
type DocketAggregate struct {
	Docket     Docket
	Booking    BookingInfo
	Invoice    *Invoice
	Consignor  Party
	Consignee  Party
	Activities []Activity
	CoLoader   *CoLoader
}
