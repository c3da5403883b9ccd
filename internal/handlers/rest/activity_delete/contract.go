//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=activity_delete_test
package activity_delete

import (
	"context"

	"freight/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Delete(ctx context.Context, activityID int64) error
}
