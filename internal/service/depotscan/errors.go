package depotscan

import "errors"

var (
	ErrEmptyDocketNo = errors.New("empty docket number")
	ErrEmptyScanTime = errors.New("empty scan time")
)
