//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=depotscan_test
package depotscan

import (
	"context"

	"freight/internal/entities"
)

type DocketRepository interface {
	// GetByDocketNo возвращает docket.ErrDocketNotFound если номер неизвестен.
	GetByDocketNo(ctx context.Context, docketNo string) (*entities.Docket, error)
}

type Ledger interface {
	Append(ctx context.Context, activityModify entities.ActivityModify) (*entities.Activity, error)
}
