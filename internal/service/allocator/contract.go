//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=allocator_test
package allocator

import (
	"context"

	"freight/internal/entities"
)

type Repository interface {
	// NextNumber атомарно инкрементирует счетчик и возвращает выданный номер.
	NextNumber(ctx context.Context) (entities.DocketNumber, error)
}

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
