package activity

import (
	"context"
	"fmt"
	"time"

	"freight/internal/entities"
	"freight/pkg/logger"
)

// Ledger - журнал событий накладной. Записи только добавляются и удаляются,
// текущий статус накладной нигде не хранится и всегда выводится из последней
// по времени записи.
type Ledger struct {
	repository Repository
	dockets    DocketReader
	images     ImageStore
	log        handlerLogger
}

func New(log handlerLogger, repository Repository, dockets DocketReader, images ImageStore) *Ledger {
	return &Ledger{
		repository: repository,
		dockets:    dockets,
		images:     images,
		log:        log.With(),
	}
}

func (l *Ledger) Append(ctx context.Context, activityModify entities.ActivityModify) (*entities.Activity, error) {
	if activityModify.DocketID == nil ||
		activityModify.StatusCode == nil ||
		activityModify.Location == nil ||
		activityModify.OccurredOn == nil ||
		activityModify.OccurredAt == nil {
		return nil, ErrMissingRequiredFields
	}

	if *activityModify.DocketID <= 0 {
		return nil, ErrInvalidDocketID
	}
	if !isKnownStatusCode(*activityModify.StatusCode) {
		return nil, ErrUnknownStatusCode
	}
	if !isValidLocation(*activityModify.Location) {
		return nil, ErrMissingRequiredFields
	}

	if activityModify.Label == nil || *activityModify.Label == "" {
		label := activityModify.StatusCode.String()
		activityModify.Label = &label
	}

	created, err := l.repository.Create(ctx, activityModify)
	if err != nil {
		return nil, fmt.Errorf("append activity: %w", err)
	}

	return created, nil
}

// Latest возвращает последнее событие накладной. Для одинаковых даты и
// времени побеждает запись, вставленная позже (больший id).
func (l *Ledger) Latest(ctx context.Context, docketID int64) (*entities.Activity, error) {
	if docketID <= 0 {
		return nil, ErrInvalidDocketID
	}

	latest, err := l.repository.Latest(ctx, docketID)
	if err != nil {
		return nil, fmt.Errorf("latest activity: %w", err)
	}

	return latest, nil
}

func (l *Ledger) ListByDocket(ctx context.Context, docketID int64) ([]entities.Activity, error) {
	if docketID <= 0 {
		return nil, ErrInvalidDocketID
	}

	activities, err := l.repository.ListByDocket(ctx, docketID)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	return activities, nil
}

// Delete удаляет событие. Прикрепленное изображение удаляется во внешнем
// хостинге best-effort: сбой логируется и не валит операцию.
func (l *Ledger) Delete(ctx context.Context, activityID int64) error {
	if activityID <= 0 {
		return ErrInvalidActivityID
	}

	existing, err := l.repository.GetByID(ctx, activityID)
	if err != nil {
		return fmt.Errorf("get activity: %w", err)
	}

	err = l.repository.Delete(ctx, activityID)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}

	if existing.PodImage != nil {
		err := l.images.Delete(ctx, existing.PodImage.DeleteKey)
		if err != nil {
			l.log.With(
				logger.NewField("activity_id", activityID),
				logger.NewField("error", err),
			).Warn("POD image cleanup failed, leaving orphan")
		}
	}

	return nil
}

// DeriveState выводит состояние доставки из последнего события и жизненного
// цикла накладной.
func (l *Ledger) DeriveState(ctx context.Context, docketID int64) (entities.DeliveryState, error) {
	if docketID <= 0 {
		return "", ErrInvalidDocketID
	}

	docket, err := l.dockets.GetByID(ctx, docketID)
	if err != nil {
		return "", fmt.Errorf("get docket: %w", err)
	}

	latest, err := l.repository.Latest(ctx, docketID)
	if err != nil {
		return "", fmt.Errorf("latest activity: %w", err)
	}

	switch latest.StatusCode {
	case entities.ActivityDelivered:
		return entities.DeliveryDelivered, nil
	case entities.ActivityUndelivered:
		return entities.DeliveryUndelivered, nil
	case entities.ActivityRTO:
		return entities.DeliveryRTO, nil
	}

	today := startOfDay(time.Now())
	if docket.Status == entities.DocketActive && !docket.ExpectedDate.Before(today) {
		return entities.DeliveryPending, nil
	}

	return entities.DeliveryStale, nil
}

// startOfDay нормализует момент времени к календарной дате в UTC: ожидаемая
// дата доставки хранится как полночь UTC, локальное "сегодня" приводится к ней.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
