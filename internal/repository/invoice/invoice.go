package invoice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight/internal/entities"
	"freight/internal/service/compliance"
	"freight/internal/service/docket"
	"github.com/jackc/pgx/v5"
)

type InvoiceDB struct {
	ID         int64
	DocketID   int64
	InvoiceNo  string
	ValueAmt   float64
	EwayBillNo string
	EwayExpiry *time.Time
	CreatedAt  time.Time
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, invoiceEntity entities.Invoice) (*entities.Invoice, error) {
	query := `
		INSERT INTO invoices (docket_id, invoice_no, value_amt, eway_bill_no, eway_expiry)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, docket_id, invoice_no, value_amt, eway_bill_no, eway_expiry, created_at
	`

	var invoiceDB InvoiceDB
	err := r.querier.QueryRow(
		ctx,
		query,
		invoiceEntity.DocketID,
		invoiceEntity.InvoiceNo,
		invoiceEntity.ValueAmt,
		invoiceEntity.EwayBillNo,
		invoiceEntity.EwayExpiry,
	).Scan(
		&invoiceDB.ID,
		&invoiceDB.DocketID,
		&invoiceDB.InvoiceNo,
		&invoiceDB.ValueAmt,
		&invoiceDB.EwayBillNo,
		&invoiceDB.EwayExpiry,
		&invoiceDB.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected invoice repository create error: %w", err)
	}

	return ToDomain(&invoiceDB), nil
}

func (r *Repository) GetByDocket(ctx context.Context, docketID int64) (*entities.Invoice, error) {
	query := `
		SELECT id, docket_id, invoice_no, value_amt, eway_bill_no, eway_expiry, created_at
		FROM invoices
		WHERE docket_id = $1`

	var invoiceDB InvoiceDB
	err := r.querier.QueryRow(ctx, query, docketID).Scan(
		&invoiceDB.ID,
		&invoiceDB.DocketID,
		&invoiceDB.InvoiceNo,
		&invoiceDB.ValueAmt,
		&invoiceDB.EwayBillNo,
		&invoiceDB.EwayExpiry,
		&invoiceDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, docket.ErrNoInvoice
		}
		return nil, fmt.Errorf("unexpected invoice repository getbydocket error: %w", err)
	}

	return ToDomain(&invoiceDB), nil
}

func (r *Repository) GetInvoiceByID(ctx context.Context, id int64) (*entities.Invoice, error) {
	query := `
		SELECT id, docket_id, invoice_no, value_amt, eway_bill_no, eway_expiry, created_at
		FROM invoices
		WHERE id = $1`

	var invoiceDB InvoiceDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&invoiceDB.ID,
		&invoiceDB.DocketID,
		&invoiceDB.InvoiceNo,
		&invoiceDB.ValueAmt,
		&invoiceDB.EwayBillNo,
		&invoiceDB.EwayExpiry,
		&invoiceDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, compliance.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("unexpected invoice repository getbyid error: %w", err)
	}

	return ToDomain(&invoiceDB), nil
}

func (r *Repository) UpdateEwayExpiry(ctx context.Context, invoiceID int64, expiry time.Time) error {
	query := `
		UPDATE invoices
		SET eway_expiry = $1
		WHERE id = $2`

	result, err := r.querier.Exec(ctx, query, expiry, invoiceID)
	if err != nil {
		return fmt.Errorf("unexpected invoice repository update eway expiry error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return compliance.ErrInvoiceNotFound
	}

	return nil
}

// ClearEwayFields чистит и номер, и срок: после доставки регуляторные поля
// не нужны, а протухший номер в выборках только шумит.
func (r *Repository) ClearEwayFields(ctx context.Context, invoiceID int64) error {
	query := `
		UPDATE invoices
		SET eway_bill_no = '',
		    eway_expiry = NULL
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, invoiceID)
	if err != nil {
		return fmt.Errorf("unexpected invoice repository clear eway error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return compliance.ErrInvoiceNotFound
	}

	return nil
}

func ToDomain(i *InvoiceDB) *entities.Invoice {
	if i == nil {
		return nil
	}
	return &entities.Invoice{
		ID:         i.ID,
		DocketID:   i.DocketID,
		InvoiceNo:  i.InvoiceNo,
		ValueAmt:   i.ValueAmt,
		EwayBillNo: i.EwayBillNo,
		EwayExpiry: i.EwayExpiry,
		CreatedAt:  i.CreatedAt,
	}
}
