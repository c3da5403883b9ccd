//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dockets_get_test
package dockets_get

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
	ListDockets(ctx context.Context, limit, offset uint64) ([]entities.Docket, error)
}

type DocketListItem struct {
	ID           int64   `json:"id"`
	DocketNo     string  `json:"docket_no"`
	OriginCity   string  `json:"origin_city"`
	DestCity     string  `json:"dest_city"`
	DistanceKm   float64 `json:"distance_km"`
	BookingDate  string  `json:"booking_date"`
	ExpectedDate string  `json:"expected_date"`
	Status       string  `json:"status"`
	HasCoLoader  bool    `json:"has_co_loader"`
}

type DocketListResponse struct {
	Dockets []DocketListItem `json:"dockets"`
}
