package coloader

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight/internal/entities"
	"freight/internal/repository"
	"freight/internal/service/coloader"
	"github.com/jackc/pgx/v5"
)

type CoLoaderDB struct {
	ID                    int64
	DocketID              int64
	CarrierName           string
	CarrierDocketNo       string
	ReceiptImageURL       *string
	ReceiptImageDeleteKey *string
	LinkedBy              string
	CreatedAt             time.Time
}

const coLoaderColumns = `id, docket_id, carrier_name, carrier_docket_no,
		receipt_image_url, receipt_image_delete_key, linked_by, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create полагается на уникальный индекс по docket_id: гонку двух привязок
// разрешает база, а не проверка чтением.
func (r *Repository) Create(ctx context.Context, coLoaderModify entities.CoLoaderModify) (*entities.CoLoader, error) {
	var receiptURL, receiptDeleteKey *string
	if coLoaderModify.ReceiptImage != nil {
		receiptURL = &coLoaderModify.ReceiptImage.URL
		receiptDeleteKey = &coLoaderModify.ReceiptImage.DeleteKey
	}

	query := `
		INSERT INTO co_loaders (docket_id, carrier_name, carrier_docket_no,
			receipt_image_url, receipt_image_delete_key, linked_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + coLoaderColumns

	var coLoaderDB CoLoaderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		coLoaderModify.DocketID,
		coLoaderModify.CarrierName,
		coLoaderModify.CarrierDocketNo,
		receiptURL,
		receiptDeleteKey,
		coLoaderModify.LinkedBy,
	).Scan(scanTargets(&coLoaderDB)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, coloader.ErrAlreadyLinked
		}
		return nil, fmt.Errorf("unexpected co-loader repository create error: %w", err)
	}

	return ToDomain(&coLoaderDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.CoLoader, error) {
	query := `
		SELECT ` + coLoaderColumns + `
		FROM co_loaders
		WHERE id = $1`

	var coLoaderDB CoLoaderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&coLoaderDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, coloader.ErrCoLoaderNotFound
		}
		return nil, fmt.Errorf("unexpected co-loader repository getbyid error: %w", err)
	}

	return ToDomain(&coLoaderDB), nil
}

func (r *Repository) GetByDocket(ctx context.Context, docketID int64) (*entities.CoLoader, error) {
	query := `
		SELECT ` + coLoaderColumns + `
		FROM co_loaders
		WHERE docket_id = $1`

	var coLoaderDB CoLoaderDB
	err := r.querier.QueryRow(ctx, query, docketID).Scan(scanTargets(&coLoaderDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, coloader.ErrCoLoaderNotFound
		}
		return nil, fmt.Errorf("unexpected co-loader repository getbydocket error: %w", err)
	}

	return ToDomain(&coLoaderDB), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM co_loaders WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected co-loader repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return coloader.ErrCoLoaderNotFound
	}

	return nil
}

// ListFlagMismatches находит накладные, где has_co_loader не совпадает с
// фактом существования привязки.
func (r *Repository) ListFlagMismatches(ctx context.Context) ([]int64, error) {
	query := `
		SELECT d.id
		FROM dockets d
		LEFT JOIN co_loaders cl ON cl.docket_id = d.id
		WHERE d.has_co_loader != (cl.id IS NOT NULL)
		ORDER BY d.id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected co-loader repository list mismatches error: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0, 8)
	for rows.Next() {
		var id int64
		err := rows.Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("unexpected co-loader repository list mismatches error: %w", err)
		}
		ids = append(ids, id)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected co-loader repository list mismatches error: %w", err)
	}

	return ids, nil
}

func ToDomain(c *CoLoaderDB) *entities.CoLoader {
	if c == nil {
		return nil
	}
	coLoaderEntity := &entities.CoLoader{
		ID:              c.ID,
		DocketID:        c.DocketID,
		CarrierName:     c.CarrierName,
		CarrierDocketNo: c.CarrierDocketNo,
		LinkedBy:        c.LinkedBy,
		CreatedAt:       c.CreatedAt,
	}

	if c.ReceiptImageURL != nil && c.ReceiptImageDeleteKey != nil {
		coLoaderEntity.ReceiptImage = &entities.ProofImage{
			URL:       *c.ReceiptImageURL,
			DeleteKey: *c.ReceiptImageDeleteKey,
		}
	}

	return coLoaderEntity
}

func scanTargets(c *CoLoaderDB) []interface{} {
	return []interface{}{
		&c.ID,
		&c.DocketID,
		&c.CarrierName,
		&c.CarrierDocketNo,
		&c.ReceiptImageURL,
		&c.ReceiptImageDeleteKey,
		&c.LinkedBy,
		&c.CreatedAt,
	}
}
