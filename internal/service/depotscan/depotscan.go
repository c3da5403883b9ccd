package depotscan

import (
	"context"
	"fmt"
	"strings"
	"time"

	"freight/internal/entities"
)

// Scan - событие сканирования на складе. Депо знают только номер накладной,
// внутренний id разрешается здесь.
type Scan struct {
	DocketNo   string
	StatusCode entities.ActivityStatusCode
	Label      string
	Location   string
	ScannedAt  time.Time
}

type Service struct {
	dockets DocketRepository
	ledger  Ledger
}

func New(dockets DocketRepository, ledger Ledger) *Service {
	return &Service{
		dockets: dockets,
		ledger:  ledger,
	}
}

// ProcessScan превращает скан депо в запись журнала. Валидация кода статуса
// и местоположения остается за журналом.
func (s *Service) ProcessScan(ctx context.Context, scan Scan) (*entities.Activity, error) {
	docketNo := strings.TrimSpace(scan.DocketNo)
	if docketNo == "" {
		return nil, ErrEmptyDocketNo
	}
	if scan.ScannedAt.IsZero() {
		return nil, ErrEmptyScanTime
	}

	docketEntity, err := s.dockets.GetByDocketNo(ctx, docketNo)
	if err != nil {
		return nil, fmt.Errorf("resolve docket number: %w", err)
	}

	occurredOn := startOfDay(scan.ScannedAt)
	occurredAt := scan.ScannedAt
	activityModify := entities.ActivityModify{
		DocketID:   &docketEntity.ID,
		StatusCode: &scan.StatusCode,
		Location:   &scan.Location,
		OccurredOn: &occurredOn,
		OccurredAt: &occurredAt,
	}
	if scan.Label != "" {
		activityModify.Label = &scan.Label
	}

	created, err := s.ledger.Append(ctx, activityModify)
	if err != nil {
		return nil, fmt.Errorf("append scan activity: %w", err)
	}

	return created, nil
}

// startOfDay берёт календарную дату скана (в зоне его таймстемпа) и приводит
// её к полуночи UTC, как хранятся DATE-колонки.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
