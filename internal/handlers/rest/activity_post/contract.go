//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=activity_post_test
package activity_post

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
	Append(ctx context.Context, activityModify entities.ActivityModify) (*entities.Activity, error)
}

type PodImageDTO struct {
	URL       string `json:"url"`
	DeleteKey string `json:"delete_key"`
}

type ActivityCreate struct {
	StatusCode string       `json:"status_code"`
	Label      string       `json:"label,omitempty"`
	Location   string       `json:"location"`
	OccurredOn string       `json:"occurred_on"`
	OccurredAt string       `json:"occurred_at"`
	PodImage   *PodImageDTO `json:"pod_image,omitempty"`
}

type ActivityCreateResponse struct {
	ID         int64  `json:"id"`
	DocketID   int64  `json:"docket_id"`
	StatusCode string `json:"status_code"`
	Label      string `json:"label"`
	Location   string `json:"location"`
	OccurredOn string `json:"occurred_on"`
	OccurredAt string `json:"occurred_at"`
}
