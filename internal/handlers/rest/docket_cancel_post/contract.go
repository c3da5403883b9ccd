//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=docket_cancel_post_test
package docket_cancel_post

import (
	"context"
	"time"

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
	Cancel(ctx context.Context, id int64, reason, actorID string) (*entities.Docket, error)
}

type DocketCancelRequest struct {
	Reason string `json:"reason"`
}

type DocketCancelResponse struct {
	ID                 int64      `json:"id"`
	DocketNo           string     `json:"docket_no"`
	Status             string     `json:"status"`
	CancellationReason string     `json:"cancellation_reason"`
	CancelledBy        *string    `json:"cancelled_by,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
}
