//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=docket_test
package docket

import (
	"context"
	"time"

	"freight/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, docket entities.Docket) (*entities.Docket, error)
	GetByID(ctx context.Context, id int64) (*entities.Docket, error)
	// ListActive отдает только активные накладные: отмена - это видимость,
	// не удаление.
	ListActive(ctx context.Context, limit, offset uint64) ([]entities.Docket, error)

	// MarkCancelled и MarkActive - условные обновления (cancel только из
	// active, restore только из cancelled), трогают только поля жизненного
	// цикла. При нуле затронутых строк возвращают ErrNoTransition.
	MarkCancelled(ctx context.Context, id int64, reason, actorID string, at time.Time) (*entities.Docket, error)
	MarkActive(ctx context.Context, id int64) (*entities.Docket, error)
}

type PartyRepository interface {
	Create(ctx context.Context, role entities.PartyRole, draft entities.PartyDraft) (*entities.Party, error)
	GetByID(ctx context.Context, id int64) (*entities.Party, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking entities.BookingInfo) (*entities.BookingInfo, error)
	GetByDocket(ctx context.Context, docketID int64) (*entities.BookingInfo, error)
}

type InvoiceRepository interface {
	Create(ctx context.Context, invoice entities.Invoice) (*entities.Invoice, error)
	// GetByDocket возвращает ErrNoInvoice, если счета у накладной нет.
	GetByDocket(ctx context.Context, docketID int64) (*entities.Invoice, error)
}

type CoLoaderReader interface {
	// GetByDocket возвращает coloader.ErrCoLoaderNotFound, если привязки нет.
	GetByDocket(ctx context.Context, docketID int64) (*entities.CoLoader, error)
}

type Allocator interface {
	Allocate(ctx context.Context) (entities.DocketNumber, error)
}

type ActivityLedger interface {
	Append(ctx context.Context, activityModify entities.ActivityModify) (*entities.Activity, error)
	ListByDocket(ctx context.Context, docketID int64) ([]entities.Activity, error)
}

type DistanceEstimator interface {
	Estimate(cityA, cityB string) float64
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
