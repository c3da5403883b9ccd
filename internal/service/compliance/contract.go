//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=compliance_test
package compliance

import (
	"context"
	"time"

	"freight/internal/entities"
)

type Repository interface {
	GetInvoiceByID(ctx context.Context, id int64) (*entities.Invoice, error)
	UpdateEwayExpiry(ctx context.Context, invoiceID int64, expiry time.Time) error
	ClearEwayFields(ctx context.Context, invoiceID int64) error
}
