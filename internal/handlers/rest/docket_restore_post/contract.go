//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=docket_restore_post_test
package docket_restore_post

import (
	"context"

	"freight/internal/entities"
	"freight/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Restore(ctx context.Context, id int64) (*entities.Docket, error)
}

type DocketRestoreResponse struct {
	ID       int64  `json:"id"`
	DocketNo string `json:"docket_no"`
	Status   string `json:"status"`
}
