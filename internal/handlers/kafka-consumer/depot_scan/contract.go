package depot_scan

import (
	"context"

	"freight/internal/entities"
	"freight/internal/service/depotscan"
	"freight/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ProcessScan(ctx context.Context, scan depotscan.Scan) (*entities.Activity, error)
}

// scanEvent - сообщение топика depot.scan.
type scanEvent struct {
	DocketNo   string `json:"docket_no"`
	StatusCode string `json:"status_code"`
	Label      string `json:"label"`
	Location   string `json:"location"`
	ScannedAt  string `json:"scanned_at"` // RFC3339
}
