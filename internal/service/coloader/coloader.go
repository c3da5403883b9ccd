package coloader

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"freight/internal/entities"
	"freight/pkg/logger"
)

// Guard следит за связью накладная-субподрядчик: строго одна привязка на
// накладную, денормализованный флаг на накладной пишется в той же транзакции.
type Guard struct {
	repository Repository
	dockets    DocketRepository
	images     ImageStore
	txManager  TxManager
	log        handlerLogger
}

func New(log handlerLogger, repository Repository, dockets DocketRepository, images ImageStore, txManager TxManager) *Guard {
	return &Guard{
		repository: repository,
		dockets:    dockets,
		images:     images,
		txManager:  txManager,
		log:        log.With(),
	}
}

// Link привязывает субподрядного перевозчика. Гонку двух одновременных
// привязок разрешает уникальный индекс по docket_id, а не проверка чтением.
func (g *Guard) Link(ctx context.Context, coLoaderModify entities.CoLoaderModify) (*entities.CoLoader, error) {
	if err := validateLink(coLoaderModify); err != nil {
		return nil, err
	}

	docket, err := g.dockets.GetByID(ctx, *coLoaderModify.DocketID)
	if err != nil {
		return nil, fmt.Errorf("get docket: %w", err)
	}
	if docket.Status == entities.DocketCancelled {
		return nil, ErrDocketCancelled
	}

	var linked *entities.CoLoader
	err = g.txManager.Do(ctx, func(ctx context.Context) error {
		linked, err = g.repository.Create(ctx, coLoaderModify)
		if err != nil {
			return fmt.Errorf("create co-loader: %w", err)
		}

		err = g.dockets.SetCoLoaderFlag(ctx, *coLoaderModify.DocketID, true)
		if err != nil {
			return fmt.Errorf("set co-loader flag: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return linked, nil
}

// Unlink снимает привязку и сбрасывает флаг в одной транзакции. Квитанция
// во внешнем хостинге удаляется best-effort уже после коммита.
func (g *Guard) Unlink(ctx context.Context, coLoaderID int64) error {
	if coLoaderID <= 0 {
		return ErrInvalidCoLoaderID
	}

	existing, err := g.repository.GetByID(ctx, coLoaderID)
	if err != nil {
		return fmt.Errorf("get co-loader: %w", err)
	}

	err = g.txManager.Do(ctx, func(ctx context.Context) error {
		err := g.repository.Delete(ctx, coLoaderID)
		if err != nil {
			return fmt.Errorf("delete co-loader: %w", err)
		}

		err = g.dockets.SetCoLoaderFlag(ctx, existing.DocketID, false)
		if err != nil {
			return fmt.Errorf("clear co-loader flag: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if existing.ReceiptImage != nil {
		err := g.images.Delete(ctx, existing.ReceiptImage.DeleteKey)
		if err != nil {
			g.log.With(
				logger.NewField("co_loader_id", coLoaderID),
				logger.NewField("error", err),
			).Warn("receipt image cleanup failed, leaving orphan")
		}
	}

	return nil
}

func (g *Guard) GetByDocket(ctx context.Context, docketID int64) (*entities.CoLoader, error) {
	if docketID <= 0 {
		return nil, ErrInvalidDocketID
	}

	linked, err := g.repository.GetByDocket(ctx, docketID)
	if err != nil {
		return nil, fmt.Errorf("get co-loader by docket: %w", err)
	}

	return linked, nil
}

// ReconcileFlags чинит разъехавшиеся флаги has_co_loader. Флаг пишется в
// одной транзакции с привязкой, так что расхождения возможны только после
// ручных правок в базе, но проверка дешевая.
func (g *Guard) ReconcileFlags(ctx context.Context) (int, error) {
	mismatched, err := g.repository.ListFlagMismatches(ctx)
	if err != nil {
		return 0, fmt.Errorf("list flag mismatches: %w", err)
	}

	repaired := 0
	for _, docketID := range mismatched {
		err := g.txManager.Do(ctx, func(ctx context.Context) error {
			_, err := g.repository.GetByDocket(ctx, docketID)
			switch {
			case err == nil:
				return g.dockets.SetCoLoaderFlag(ctx, docketID, true)
			case errors.Is(err, ErrCoLoaderNotFound):
				return g.dockets.SetCoLoaderFlag(ctx, docketID, false)
			default:
				return err
			}
		})
		if err != nil {
			g.log.With(
				logger.NewField("docket_id", docketID),
				logger.NewField("error", err),
			).Warn("co-loader flag repair failed")
			continue
		}
		repaired++
	}

	return repaired, nil
}

func validateLink(coLoaderModify entities.CoLoaderModify) error {
	if coLoaderModify.DocketID == nil ||
		coLoaderModify.CarrierName == nil ||
		coLoaderModify.CarrierDocketNo == nil ||
		coLoaderModify.LinkedBy == nil {
		return ErrMissingRequiredFields
	}

	if *coLoaderModify.DocketID <= 0 {
		return ErrInvalidDocketID
	}
	if strings.TrimSpace(*coLoaderModify.CarrierName) == "" ||
		strings.TrimSpace(*coLoaderModify.CarrierDocketNo) == "" {
		return ErrMissingRequiredFields
	}

	return nil
}
