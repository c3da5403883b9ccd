package party

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight/internal/entities"
	"freight/internal/service/docket"
	"github.com/jackc/pgx/v5"
)

type PartyDB struct {
	ID        int64
	Role      string
	Name      string
	Address   string
	TaxID     string
	Temporary bool
	CreatedAt time.Time
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, role entities.PartyRole, draft entities.PartyDraft) (*entities.Party, error) {
	query := `
		INSERT INTO parties (role, name, address, tax_id, temporary)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, role, name, address, tax_id, temporary, created_at
	`

	var partyDB PartyDB
	err := r.querier.QueryRow(
		ctx,
		query,
		role.String(),
		draft.Name,
		draft.Address,
		draft.TaxID,
		draft.Temporary,
	).Scan(
		&partyDB.ID,
		&partyDB.Role,
		&partyDB.Name,
		&partyDB.Address,
		&partyDB.TaxID,
		&partyDB.Temporary,
		&partyDB.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected party repository create error: %w", err)
	}

	return ToDomain(&partyDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Party, error) {
	query := `
		SELECT id, role, name, address, tax_id, temporary, created_at
		FROM parties
		WHERE id = $1`

	var partyDB PartyDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&partyDB.ID,
		&partyDB.Role,
		&partyDB.Name,
		&partyDB.Address,
		&partyDB.TaxID,
		&partyDB.Temporary,
		&partyDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, docket.ErrPartyNotFound
		}
		return nil, fmt.Errorf("unexpected party repository getbyid error: %w", err)
	}

	return ToDomain(&partyDB), nil
}

func ToDomain(p *PartyDB) *entities.Party {
	if p == nil {
		return nil
	}
	return &entities.Party{
		ID:        p.ID,
		Role:      entities.PartyRole(p.Role),
		Name:      p.Name,
		Address:   p.Address,
		TaxID:     p.TaxID,
		Temporary: p.Temporary,
		CreatedAt: p.CreatedAt,
	}
}
