package counter

import (
	"context"
	"fmt"

	"freight/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// NextNumber инкрементирует счетчик одним UPDATE: блокировка строки на время
// одного стейтмента, два конкурентных вызова никогда не получат одно число.
func (r *Repository) NextNumber(ctx context.Context) (entities.DocketNumber, error) {
	query := `
		UPDATE docket_counter
		SET last_number = last_number + 1,
		    updated_at = NOW()
		RETURNING prefix, last_number
	`

	var number entities.DocketNumber
	err := r.querier.QueryRow(ctx, query).Scan(&number.Prefix, &number.Number)
	if err != nil {
		return entities.DocketNumber{}, fmt.Errorf("unexpected counter repository next number error: %w", err)
	}

	return number, nil
}
