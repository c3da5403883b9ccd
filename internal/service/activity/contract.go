//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=activity_test
package activity

import (
	"context"

	"freight/internal/entities"
	"freight/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, activityModify entities.ActivityModify) (*entities.Activity, error)
	GetByID(ctx context.Context, id int64) (*entities.Activity, error)
	Delete(ctx context.Context, id int64) error

	// Latest и ListByDocket сортируют по (occurred_on DESC, occurred_at DESC,
	// id DESC): одинаковые дата и время разрешаются порядком вставки.
	Latest(ctx context.Context, docketID int64) (*entities.Activity, error)
	ListByDocket(ctx context.Context, docketID int64) ([]entities.Activity, error)
}

type DocketReader interface {
	GetByID(ctx context.Context, id int64) (*entities.Docket, error)
}

type ImageStore interface {
	Delete(ctx context.Context, deleteKey string) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
