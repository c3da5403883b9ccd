package docket

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight/internal/entities"
	"freight/internal/service/coloader"
	"freight/internal/service/compliance"
)

type Docket struct {
	repository Repository
	parties    PartyRepository
	bookings   BookingRepository
	invoices   InvoiceRepository
	coLoaders  CoLoaderReader
	allocator  Allocator
	ledger     ActivityLedger
	estimator  DistanceEstimator
	txManager  TxManager
}

func New(
	repository Repository,
	parties PartyRepository,
	bookings BookingRepository,
	invoices InvoiceRepository,
	coLoaders CoLoaderReader,
	allocator Allocator,
	ledger ActivityLedger,
	estimator DistanceEstimator,
	txManager TxManager,
) *Docket {
	return &Docket{
		repository: repository,
		parties:    parties,
		bookings:   bookings,
		invoices:   invoices,
		coLoaders:  coLoaders,
		allocator:  allocator,
		ledger:     ledger,
		estimator:  estimator,
		txManager:  txManager,
	}
}

// CreateDocket собирает всю связку записей одной накладной. Шаги выполняются
// в одной транзакции: при сбое на любом шаге ничего не остается. Номер
// выдается до транзакции - сгоревший при откате номер допустим, удержание
// блокировки счетчика на всю сборку - нет.
func (d *Docket) CreateDocket(ctx context.Context, draft entities.DocketDraft) (*entities.DocketAggregate, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	number, err := d.allocator.Allocate(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocate docket number: %w", err)
	}

	distanceKm := d.estimator.Estimate(draft.OriginCity, draft.DestCity)
	now := time.Now().UTC()

	aggregate := entities.DocketAggregate{}
	err = d.txManager.Do(ctx, func(ctx context.Context) error {
		consignor, err := d.resolveParty(ctx, entities.RoleConsignor, draft.Consignor)
		if err != nil {
			return fmt.Errorf("resolve consignor: %w", err)
		}

		consignee, err := d.resolveParty(ctx, entities.RoleConsignee, draft.Consignee)
		if err != nil {
			return fmt.Errorf("resolve consignee: %w", err)
		}

		created, err := d.repository.Create(ctx, entities.Docket{
			DocketNo:     number.String(),
			OriginCity:   draft.OriginCity,
			DestCity:     draft.DestCity,
			DistanceKm:   distanceKm,
			BookingDate:  draft.BookingDate,
			ExpectedDate: draft.ExpectedDate,
			ConsignorID:  consignor.ID,
			ConsigneeID:  consignee.ID,
			Status:       entities.DocketActive,
		})
		if err != nil {
			return fmt.Errorf("create docket: %w", err)
		}

		booking, err := d.bookings.Create(ctx, entities.BookingInfo{
			DocketID:     created.ID,
			Mode:         draft.Booking.Mode,
			BillingParty: draft.Booking.BillingParty,
			LoadType:     draft.Booking.LoadType,
		})
		if err != nil {
			return fmt.Errorf("create booking info: %w", err)
		}

		var invoice *entities.Invoice
		if draft.Invoice != nil {
			invoice, err = d.createInvoice(ctx, created, *draft.Invoice, distanceKm)
			if err != nil {
				return fmt.Errorf("create invoice: %w", err)
			}
		}

		seeded, err := d.seedBookedActivity(ctx, created, now)
		if err != nil {
			return fmt.Errorf("seed booked activity: %w", err)
		}

		aggregate = entities.DocketAggregate{
			Docket:     *created,
			Booking:    *booking,
			Invoice:    invoice,
			Consignor:  *consignor,
			Consignee:  *consignee,
			Activities: []entities.Activity{*seeded},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &aggregate, nil
}

// GetDocket собирает накладную со всеми связанными записями для чтения.
// Отмененные накладные по id доступны как обычно.
func (d *Docket) GetDocket(ctx context.Context, id int64) (*entities.DocketAggregate, error) {
	if id <= 0 {
		return nil, ErrInvalidDocketID
	}

	docketEntity, err := d.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get docket: %w", err)
	}

	booking, err := d.bookings.GetByDocket(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking info: %w", err)
	}

	consignor, err := d.parties.GetByID(ctx, docketEntity.ConsignorID)
	if err != nil {
		return nil, fmt.Errorf("get consignor: %w", err)
	}

	consignee, err := d.parties.GetByID(ctx, docketEntity.ConsigneeID)
	if err != nil {
		return nil, fmt.Errorf("get consignee: %w", err)
	}

	// Счета и ко-лоадера может не быть, это не ошибка.
	invoice, err := d.invoices.GetByDocket(ctx, id)
	if err != nil && !errors.Is(err, ErrNoInvoice) {
		return nil, fmt.Errorf("get invoice: %w", err)
	}

	coLoader, err := d.coLoaders.GetByDocket(ctx, id)
	if err != nil && !errors.Is(err, coloader.ErrCoLoaderNotFound) {
		return nil, fmt.Errorf("get co-loader: %w", err)
	}

	activities, err := d.ledger.ListByDocket(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	return &entities.DocketAggregate{
		Docket:     *docketEntity,
		Booking:    *booking,
		Invoice:    invoice,
		Consignor:  *consignor,
		Consignee:  *consignee,
		Activities: activities,
		CoLoader:   coLoader,
	}, nil
}

func (d *Docket) ListDockets(ctx context.Context, limit, offset uint64) ([]entities.Docket, error) {
	dockets, err := d.repository.ListActive(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list dockets: %w", err)
	}
	return dockets, nil
}

// Cancel переводит накладную в cancelled. Условное обновление страхует от
// lost update: состояние проверяется самим UPDATE, не предварительным чтением.
func (d *Docket) Cancel(ctx context.Context, id int64, reason, actorID string) (*entities.Docket, error) {
	if id <= 0 {
		return nil, ErrInvalidDocketID
	}
	if !isValidCancelReason(reason) {
		return nil, ErrEmptyCancelReason
	}

	updated, err := d.repository.MarkCancelled(ctx, id, reason, actorID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, ErrNoTransition) {
			return nil, d.explainFailedTransition(ctx, id, entities.DocketCancelled)
		}
		return nil, fmt.Errorf("cancel docket: %w", err)
	}

	return updated, nil
}

// Restore возвращает отмененную накладную в active и чистит поля отмены.
func (d *Docket) Restore(ctx context.Context, id int64) (*entities.Docket, error) {
	if id <= 0 {
		return nil, ErrInvalidDocketID
	}

	updated, err := d.repository.MarkActive(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNoTransition) {
			return nil, d.explainFailedTransition(ctx, id, entities.DocketActive)
		}
		return nil, fmt.Errorf("restore docket: %w", err)
	}

	return updated, nil
}

func (d *Docket) resolveParty(ctx context.Context, role entities.PartyRole, choice entities.PartyChoice) (*entities.Party, error) {
	if choice.Ref != nil {
		party, err := d.parties.GetByID(ctx, choice.Ref.ID)
		if err != nil {
			return nil, err
		}
		return party, nil
	}
	return d.parties.Create(ctx, role, *choice.Draft)
}

func (d *Docket) createInvoice(ctx context.Context, created *entities.Docket, draft entities.InvoiceDraft, distanceKm float64) (*entities.Invoice, error) {
	invoice := entities.Invoice{
		DocketID:   created.ID,
		InvoiceNo:  draft.InvoiceNo,
		ValueAmt:   draft.ValueAmt,
		EwayBillNo: draft.EwayBillNo,
	}

	if draft.EwayBillNo != "" {
		expiry := compliance.ComputeExpiry(created.BookingDate, distanceKm)
		invoice.EwayExpiry = &expiry
	}

	return d.invoices.Create(ctx, invoice)
}

func (d *Docket) seedBookedActivity(ctx context.Context, created *entities.Docket, now time.Time) (*entities.Activity, error) {
	code := entities.ActivityBooked
	label := "Booked"
	return d.ledger.Append(ctx, entities.ActivityModify{
		DocketID:   &created.ID,
		StatusCode: &code,
		Label:      &label,
		Location:   &created.OriginCity,
		OccurredOn: &now,
		OccurredAt: &now,
	})
}

// explainFailedTransition перечитывает накладную, чтобы отличить NotFound
// от конфликта состояния.
func (d *Docket) explainFailedTransition(ctx context.Context, id int64, target entities.DocketStatusType) error {
	current, err := d.repository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if target == entities.DocketCancelled && current.Status == entities.DocketCancelled {
		return ErrAlreadyCancelled
	}
	if target == entities.DocketActive && current.Status == entities.DocketActive {
		return ErrNotCancelled
	}

	return ErrNoTransition
}
