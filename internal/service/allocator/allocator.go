package allocator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight/internal/entities"
	retrierconfig "freight/pkg/retrier"
	"freight/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 50 * time.Millisecond
	maxInterval     = 500 * time.Millisecond
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// Allocator выдает номера накладных. Вся сериализация конкурентных вызовов
// происходит в хранилище: инкремент - одна атомарная операция, не чтение
// с последующей записью в коде.
type Allocator struct {
	repository Repository
	retrier    Retrier
}

func New(repository Repository) *Allocator {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Allocator{
		repository: repository,
		retrier:    backoff_adapter.New(retryConfig),
	}
}

// Allocate возвращает следующий номер. Номера глобально уникальны и не
// убывают; пропуски допустимы, повторы - никогда.
func (a *Allocator) Allocate(ctx context.Context) (entities.DocketNumber, error) {
	var number entities.DocketNumber

	err := a.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		var err error
		number, err = a.repository.NextNumber(ctx)
		return err
	})
	if err != nil {
		return entities.DocketNumber{}, fmt.Errorf("%w: %w", ErrCounterUnavailable, err)
	}

	return number, nil
}

func isRetryable(err error) bool {
	// Отмену контекста ретраить бессмысленно, остальное - временные сбои БД.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return err != nil
}
