package activity

import (
	"context"
	"errors"
	"fmt"

	"freight/internal/entities"
	"freight/internal/service/activity"
	"github.com/jackc/pgx/v5"
)

const activityColumns = `id, docket_id, status_code, label, location,
		occurred_on, occurred_at, pod_image_url, pod_image_delete_key, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, activityModify entities.ActivityModify) (*entities.Activity, error) {
	activityModifyDB := FromDomainModify(&activityModify)

	query := `
		INSERT INTO activities (docket_id, status_code, label, location,
			occurred_on, occurred_at, pod_image_url, pod_image_delete_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + activityColumns

	var activityDB ActivityDB
	err := r.querier.QueryRow(
		ctx,
		query,
		activityModifyDB.DocketID,
		activityModifyDB.StatusCode,
		activityModifyDB.Label,
		activityModifyDB.Location,
		activityModifyDB.OccurredOn,
		activityModifyDB.OccurredAt,
		activityModifyDB.PodImageURL,
		activityModifyDB.PodImageDeleteKey,
	).Scan(scanTargets(&activityDB)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected activity repository create error: %w", err)
	}

	return ToDomain(&activityDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Activity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE id = $1`

	var activityDB ActivityDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&activityDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, activity.ErrActivityNotFound
		}
		return nil, fmt.Errorf("unexpected activity repository getbyid error: %w", err)
	}

	return ToDomain(&activityDB), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM activities WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected activity repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return activity.ErrActivityNotFound
	}

	return nil
}

// Latest: при равных дате и времени побеждает большая id - порядок вставки.
func (r *Repository) Latest(ctx context.Context, docketID int64) (*entities.Activity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE docket_id = $1
		ORDER BY occurred_on DESC, occurred_at DESC, id DESC
		LIMIT 1`

	var activityDB ActivityDB
	err := r.querier.QueryRow(ctx, query, docketID).Scan(scanTargets(&activityDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, activity.ErrNoActivities
		}
		return nil, fmt.Errorf("unexpected activity repository latest error: %w", err)
	}

	return ToDomain(&activityDB), nil
}

func (r *Repository) ListByDocket(ctx context.Context, docketID int64) ([]entities.Activity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE docket_id = $1
		ORDER BY occurred_on DESC, occurred_at DESC, id DESC`

	rows, err := r.querier.Query(ctx, query, docketID)
	if err != nil {
		return nil, fmt.Errorf("unexpected activity repository list error: %w", err)
	}
	defer rows.Close()

	activityModels := make([]ActivityDB, 0, 8)
	for rows.Next() {
		var activityDB ActivityDB
		err := rows.Scan(scanTargets(&activityDB)...)
		if err != nil {
			return nil, fmt.Errorf("unexpected activity repository list error: %w", err)
		}
		activityModels = append(activityModels, activityDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected activity repository list error: %w", err)
	}

	return ToDomainList(activityModels), nil
}

func scanTargets(a *ActivityDB) []interface{} {
	return []interface{}{
		&a.ID,
		&a.DocketID,
		&a.StatusCode,
		&a.Label,
		&a.Location,
		&a.OccurredOn,
		&a.OccurredAt,
		&a.PodImageURL,
		&a.PodImageDeleteKey,
		&a.CreatedAt,
	}
}
