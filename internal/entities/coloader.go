package entities

import "time"

// CoLoader - привязка субподрядного перевозчика, строго одна на накладную.
// Факт существования записи дублируется флагом Docket.HasCoLoader.
type CoLoader struct {
	ID              int64
	DocketID        int64
	CarrierName     string
	CarrierDocketNo string
	ReceiptImage    *ProofImage
	LinkedBy        string
	CreatedAt       time.Time
}

type CoLoaderModify struct {
	DocketID        *int64
	CarrierName     *string
	CarrierDocketNo *string
	ReceiptImage    *ProofImage
	LinkedBy        *string
}
