//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=coloader_post_test
package coloader_post

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
	Link(ctx context.Context, coLoaderModify entities.CoLoaderModify) (*entities.CoLoader, error)
}

type ReceiptImageDTO struct {
	URL       string `json:"url"`
	DeleteKey string `json:"delete_key"`
}

type CoLoaderLink struct {
	CarrierName     string           `json:"carrier_name"`
	CarrierDocketNo string           `json:"carrier_docket_no"`
	ReceiptImage    *ReceiptImageDTO `json:"receipt_image,omitempty"`
}

type CoLoaderLinkResponse struct {
	ID              int64  `json:"id"`
	DocketID        int64  `json:"docket_id"`
	CarrierName     string `json:"carrier_name"`
	CarrierDocketNo string `json:"carrier_docket_no"`
	ReceiptImage    string `json:"receipt_image,omitempty"`
	LinkedBy        string `json:"linked_by"`
}
