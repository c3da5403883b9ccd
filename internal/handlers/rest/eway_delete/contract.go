//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=eway_delete_test
package eway_delete

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
	ClearEway(ctx context.Context, invoiceID int64) error
}
