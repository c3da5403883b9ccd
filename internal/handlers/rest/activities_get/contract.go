//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=activities_get_test
package activities_get

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
	ListByDocket(ctx context.Context, docketID int64) ([]entities.Activity, error)
}

type PodImageDTO struct {
	URL string `json:"url"`
}

type ActivityDTO struct {
	ID         int64        `json:"id"`
	DocketID   int64        `json:"docket_id"`
	StatusCode string       `json:"status_code"`
	Label      string       `json:"label"`
	Location   string       `json:"location"`
	OccurredOn string       `json:"occurred_on"`
	OccurredAt string       `json:"occurred_at"`
	PodImage   *PodImageDTO `json:"pod_image,omitempty"`
}

type ActivityListResponse struct {
	Activities []ActivityDTO `json:"activities"`
}
