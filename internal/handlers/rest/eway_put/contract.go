//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=eway_put_test
package eway_put

import (
	"context"
	"time"

	"freight/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	OverrideExpiry(ctx context.Context, invoiceID int64, newExpiry time.Time) error
}

type EwayOverrideRequest struct {
	Expiry string `json:"expiry"`
}
