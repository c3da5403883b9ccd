package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight/internal/entities"
	"freight/internal/service/docket"
	"github.com/jackc/pgx/v5"
)

type BookingDB struct {
	ID           int64
	DocketID     int64
	Mode         string
	BillingParty string
	LoadType     string
	CreatedAt    time.Time
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, bookingEntity entities.BookingInfo) (*entities.BookingInfo, error) {
	query := `
		INSERT INTO bookings (docket_id, mode, billing_party, load_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, docket_id, mode, billing_party, load_type, created_at
	`

	var bookingDB BookingDB
	err := r.querier.QueryRow(
		ctx,
		query,
		bookingEntity.DocketID,
		bookingEntity.Mode.String(),
		bookingEntity.BillingParty.String(),
		bookingEntity.LoadType,
	).Scan(
		&bookingDB.ID,
		&bookingDB.DocketID,
		&bookingDB.Mode,
		&bookingDB.BillingParty,
		&bookingDB.LoadType,
		&bookingDB.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository create error: %w", err)
	}

	return ToDomain(&bookingDB), nil
}

func (r *Repository) GetByDocket(ctx context.Context, docketID int64) (*entities.BookingInfo, error) {
	query := `
		SELECT id, docket_id, mode, billing_party, load_type, created_at
		FROM bookings
		WHERE docket_id = $1`

	var bookingDB BookingDB
	err := r.querier.QueryRow(ctx, query, docketID).Scan(
		&bookingDB.ID,
		&bookingDB.DocketID,
		&bookingDB.Mode,
		&bookingDB.BillingParty,
		&bookingDB.LoadType,
		&bookingDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, docket.ErrDocketNotFound
		}
		return nil, fmt.Errorf("unexpected booking repository getbydocket error: %w", err)
	}

	return ToDomain(&bookingDB), nil
}

func ToDomain(b *BookingDB) *entities.BookingInfo {
	if b == nil {
		return nil
	}
	return &entities.BookingInfo{
		ID:           b.ID,
		DocketID:     b.DocketID,
		Mode:         entities.TransportMode(b.Mode),
		BillingParty: entities.BillingParty(b.BillingParty),
		LoadType:     b.LoadType,
		CreatedAt:    b.CreatedAt,
	}
}
