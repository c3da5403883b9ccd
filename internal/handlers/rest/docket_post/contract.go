//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=docket_post_test
package docket_post

import (
	"context"

	"freight/internal/entities"
	"freight/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateDocket(ctx context.Context, draft entities.DocketDraft) (*entities.DocketAggregate, error)
}

// PartyChoiceDTO: либо id существующей стороны, либо данные новой.
// Заполненные оба варианта сервис отклоняет как неоднозначные.
type PartyChoiceDTO struct {
	ID        *int64 `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Address   string `json:"address,omitempty"`
	TaxID     string `json:"tax_id,omitempty"`
	Temporary bool   `json:"temporary,omitempty"`
}

type BookingDTO struct {
	Mode         string `json:"mode"`
	BillingParty string `json:"billing_party"`
	LoadType     string `json:"load_type"`
}

type InvoiceDTO struct {
	InvoiceNo  string  `json:"invoice_no"`
	ValueAmt   float64 `json:"value_amt"`
	EwayBillNo string  `json:"eway_bill_no,omitempty"`
}

type DocketCreate struct {
	OriginCity   string         `json:"origin_city"`
	DestCity     string         `json:"dest_city"`
	BookingDate  string         `json:"booking_date"`
	ExpectedDate string         `json:"expected_date"`
	Consignor    PartyChoiceDTO `json:"consignor"`
	Consignee    PartyChoiceDTO `json:"consignee"`
	Booking      BookingDTO     `json:"booking"`
	Invoice      *InvoiceDTO    `json:"invoice,omitempty"`
}

type DocketCreateResponse struct {
	ID         int64   `json:"id"`
	DocketNo   string  `json:"docket_no"`
	Status     string  `json:"status"`
	DistanceKm float64 `json:"distance_km"`
	EwayExpiry *string `json:"eway_expiry,omitempty"`
}
