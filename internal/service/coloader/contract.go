//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=coloader_test
package coloader

import (
	"context"

	"freight/internal/entities"
	"freight/pkg/logger"
)

type Repository interface {
	// Create возвращает ErrAlreadyLinked при попытке второй привязки
	// к той же накладной: уникальность держит индекс по docket_id.
	Create(ctx context.Context, coLoaderModify entities.CoLoaderModify) (*entities.CoLoader, error)
	GetByID(ctx context.Context, id int64) (*entities.CoLoader, error)
	GetByDocket(ctx context.Context, docketID int64) (*entities.CoLoader, error)
	Delete(ctx context.Context, id int64) error
	// ListFlagMismatches отдает id накладных, у которых денормализованный
	// флаг разошелся с фактом привязки.
	ListFlagMismatches(ctx context.Context) ([]int64, error)
}

type DocketRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Docket, error)
	SetCoLoaderFlag(ctx context.Context, docketID int64, hasCoLoader bool) error
}

type ImageStore interface {
	Delete(ctx context.Context, deleteKey string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
