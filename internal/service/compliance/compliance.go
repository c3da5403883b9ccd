package compliance

import (
	"context"
	"fmt"
	"time"

	"freight/internal/entities"
)

type Compliance struct {
	repository Repository
}

func New(repository Repository) *Compliance {
	return &Compliance{
		repository: repository,
	}
}

// ClassifyInvoice читает счет и классифицирует его e-way bill на текущий момент.
func (c *Compliance) ClassifyInvoice(ctx context.Context, invoiceID int64) (*entities.EwayClassification, error) {
	if invoiceID <= 0 {
		return nil, ErrInvalidInvoiceID
	}

	invoice, err := c.repository.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}

	if invoice.EwayExpiry == nil {
		return nil, ErrNoEwayBill
	}

	classification := Classify(*invoice.EwayExpiry, time.Now())
	return &classification, nil
}

// OverrideExpiry выставляет срок вручную (продление регулятором). Новая дата
// переклассифицируется при следующем чтении, не сейчас.
func (c *Compliance) OverrideExpiry(ctx context.Context, invoiceID int64, newExpiry time.Time) error {
	if invoiceID <= 0 {
		return ErrInvalidInvoiceID
	}
	if newExpiry.IsZero() {
		return ErrInvalidExpiry
	}

	err := c.repository.UpdateEwayExpiry(ctx, invoiceID, startOfDay(newExpiry))
	if err != nil {
		return fmt.Errorf("override e-way expiry: %w", err)
	}
	return nil
}

// ClearEway очищает поля e-way bill после окончательной доставки.
func (c *Compliance) ClearEway(ctx context.Context, invoiceID int64) error {
	if invoiceID <= 0 {
		return ErrInvalidInvoiceID
	}

	err := c.repository.ClearEwayFields(ctx, invoiceID)
	if err != nil {
		return fmt.Errorf("clear e-way fields: %w", err)
	}
	return nil
}
