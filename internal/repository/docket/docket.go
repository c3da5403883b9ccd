package docket

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight/internal/entities"
	"freight/internal/service/docket"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const docketColumns = `id, docket_no, origin_city, dest_city, distance_km,
		booking_date, expected_date, consignor_id, consignee_id, status,
		cancellation_reason, cancelled_by, cancelled_at, has_co_loader,
		created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, docketEntity entities.Docket) (*entities.Docket, error) {
	query := `
		INSERT INTO dockets (docket_no, origin_city, dest_city, distance_km,
			booking_date, expected_date, consignor_id, consignee_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + docketColumns

	var docketDB DocketDB
	err := r.querier.QueryRow(
		ctx,
		query,
		docketEntity.DocketNo,
		docketEntity.OriginCity,
		docketEntity.DestCity,
		docketEntity.DistanceKm,
		docketEntity.BookingDate,
		docketEntity.ExpectedDate,
		docketEntity.ConsignorID,
		docketEntity.ConsigneeID,
		docketEntity.Status.String(),
	).Scan(scanTargets(&docketDB)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected docket repository create error: %w", err)
	}

	return ToDomain(&docketDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Docket, error) {
	query := `
		SELECT ` + docketColumns + `
		FROM dockets
		WHERE id = $1`

	var docketDB DocketDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&docketDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, docket.ErrDocketNotFound
		}
		return nil, fmt.Errorf("unexpected docket repository getbyid error: %w", err)
	}

	return ToDomain(&docketDB), nil
}

func (r *Repository) GetByDocketNo(ctx context.Context, docketNo string) (*entities.Docket, error) {
	query := `
		SELECT ` + docketColumns + `
		FROM dockets
		WHERE docket_no = $1`

	var docketDB DocketDB
	err := r.querier.QueryRow(ctx, query, docketNo).Scan(scanTargets(&docketDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, docket.ErrDocketNotFound
		}
		return nil, fmt.Errorf("unexpected docket repository getbydocketno error: %w", err)
	}

	return ToDomain(&docketDB), nil
}

func (r *Repository) ListActive(ctx context.Context, limit, offset uint64) ([]entities.Docket, error) {
	builder := qb.
		Select("id", "docket_no", "origin_city", "dest_city", "distance_km",
			"booking_date", "expected_date", "consignor_id", "consignee_id", "status",
			"cancellation_reason", "cancelled_by", "cancelled_at", "has_co_loader",
			"created_at", "updated_at").
		From("dockets").
		Where(sq.Eq{"status": entities.DocketActive.String()}).
		OrderBy("id DESC")

	if limit > 0 {
		builder = builder.Limit(limit)
	}
	if offset > 0 {
		builder = builder.Offset(offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected docket repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected docket repository list error: %w", err)
	}
	defer rows.Close()

	docketModels := make([]DocketDB, 0, 8)
	for rows.Next() {
		var docketDB DocketDB
		err := rows.Scan(scanTargets(&docketDB)...)
		if err != nil {
			return nil, fmt.Errorf("unexpected docket repository list error: %w", err)
		}
		docketModels = append(docketModels, docketDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected docket repository list error: %w", err)
	}

	return ToDomainList(docketModels), nil
}

// MarkCancelled - условное обновление: состояние проверяет сам UPDATE,
// при гонке двух отмен вторая получит ноль строк.
func (r *Repository) MarkCancelled(ctx context.Context, id int64, reason, actorID string, at time.Time) (*entities.Docket, error) {
	query := `
		UPDATE dockets
		SET status = $1,
		    cancellation_reason = $2,
		    cancelled_by = $3,
		    cancelled_at = $4,
		    updated_at = NOW()
		WHERE id = $5 AND status = $6
		RETURNING ` + docketColumns

	var docketDB DocketDB
	err := r.querier.QueryRow(
		ctx,
		query,
		entities.DocketCancelled.String(),
		reason,
		actorID,
		at,
		id,
		entities.DocketActive.String(),
	).Scan(scanTargets(&docketDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, docket.ErrNoTransition
		}
		return nil, fmt.Errorf("unexpected docket repository mark cancelled error: %w", err)
	}

	return ToDomain(&docketDB), nil
}

func (r *Repository) MarkActive(ctx context.Context, id int64) (*entities.Docket, error) {
	query := `
		UPDATE dockets
		SET status = $1,
		    cancellation_reason = '',
		    cancelled_by = NULL,
		    cancelled_at = NULL,
		    updated_at = NOW()
		WHERE id = $2 AND status = $3
		RETURNING ` + docketColumns

	var docketDB DocketDB
	err := r.querier.QueryRow(
		ctx,
		query,
		entities.DocketActive.String(),
		id,
		entities.DocketCancelled.String(),
	).Scan(scanTargets(&docketDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, docket.ErrNoTransition
		}
		return nil, fmt.Errorf("unexpected docket repository mark active error: %w", err)
	}

	return ToDomain(&docketDB), nil
}

func (r *Repository) SetCoLoaderFlag(ctx context.Context, docketID int64, hasCoLoader bool) error {
	query := `
		UPDATE dockets
		SET has_co_loader = $1,
		    updated_at = NOW()
		WHERE id = $2`

	result, err := r.querier.Exec(ctx, query, hasCoLoader, docketID)
	if err != nil {
		return fmt.Errorf("unexpected docket repository set co-loader flag error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return docket.ErrDocketNotFound
	}

	return nil
}

func scanTargets(d *DocketDB) []interface{} {
	return []interface{}{
		&d.ID,
		&d.DocketNo,
		&d.OriginCity,
		&d.DestCity,
		&d.DistanceKm,
		&d.BookingDate,
		&d.ExpectedDate,
		&d.ConsignorID,
		&d.ConsigneeID,
		&d.Status,
		&d.CancellationReason,
		&d.CancelledBy,
		&d.CancelledAt,
		&d.HasCoLoader,
		&d.CreatedAt,
		&d.UpdatedAt,
	}
}
