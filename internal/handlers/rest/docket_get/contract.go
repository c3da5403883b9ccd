//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=docket_get_test
package docket_get

import (
	"context"
	"time"

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
	GetDocket(ctx context.Context, id int64) (*entities.DocketAggregate, error)
}

// Compliance классифицирует e-way bill на момент запроса. Результат нигде
// не хранится и считается при каждом чтении.
type Compliance interface {
	ClassifyInvoice(ctx context.Context, invoiceID int64) (*entities.EwayClassification, error)
}

type StateReader interface {
	DeriveState(ctx context.Context, docketID int64) (entities.DeliveryState, error)
}

type PartyDTO struct {
	ID        int64  `json:"id"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	TaxID     string `json:"tax_id,omitempty"`
	Temporary bool   `json:"temporary,omitempty"`
}

type BookingDTO struct {
	Mode         string `json:"mode"`
	BillingParty string `json:"billing_party"`
	LoadType     string `json:"load_type"`
}

type EwayDTO struct {
	State string `json:"state"`
	Days  int    `json:"days"`
}

type InvoiceDTO struct {
	ID         int64    `json:"id"`
	InvoiceNo  string   `json:"invoice_no"`
	ValueAmt   float64  `json:"value_amt"`
	EwayBillNo string   `json:"eway_bill_no,omitempty"`
	EwayExpiry *string  `json:"eway_expiry,omitempty"`
	Eway       *EwayDTO `json:"eway,omitempty"`
}

type PodImageDTO struct {
	URL string `json:"url"`
}

type ActivityDTO struct {
	ID         int64        `json:"id"`
	StatusCode string       `json:"status_code"`
	Label      string       `json:"label"`
	Location   string       `json:"location"`
	OccurredOn string       `json:"occurred_on"`
	OccurredAt string       `json:"occurred_at"`
	PodImage   *PodImageDTO `json:"pod_image,omitempty"`
}

type CoLoaderDTO struct {
	ID              int64  `json:"id"`
	CarrierName     string `json:"carrier_name"`
	CarrierDocketNo string `json:"carrier_docket_no"`
	ReceiptImage    string `json:"receipt_image,omitempty"`
	LinkedBy        string `json:"linked_by"`
}

type DocketResponse struct {
	ID                 int64         `json:"id"`
	DocketNo           string        `json:"docket_no"`
	OriginCity         string        `json:"origin_city"`
	DestCity           string        `json:"dest_city"`
	DistanceKm         float64       `json:"distance_km"`
	BookingDate        string        `json:"booking_date"`
	ExpectedDate       string        `json:"expected_date"`
	Status             string        `json:"status"`
	CancellationReason string        `json:"cancellation_reason,omitempty"`
	CancelledBy        *string       `json:"cancelled_by,omitempty"`
	CancelledAt        *time.Time    `json:"cancelled_at,omitempty"`
	HasCoLoader        bool          `json:"has_co_loader"`
	DeliveryState      string        `json:"delivery_state,omitempty"`
	Consignor          PartyDTO      `json:"consignor"`
	Consignee          PartyDTO      `json:"consignee"`
	Booking            BookingDTO    `json:"booking"`
	Invoice            *InvoiceDTO   `json:"invoice,omitempty"`
	Activities         []ActivityDTO `json:"activities"`
	CoLoader           *CoLoaderDTO  `json:"co_loader,omitempty"`
}
