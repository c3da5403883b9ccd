//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	"freight/internal/gateway/imagehost"
	"freight/internal/handlers/rest/activities_get"
	"freight/internal/handlers/rest/activity_delete"
	"freight/internal/handlers/rest/activity_post"
	"freight/internal/handlers/rest/coloader_delete"
	"freight/internal/handlers/rest/coloader_post"
	"freight/internal/handlers/rest/docket_cancel_post"
	"freight/internal/handlers/rest/docket_get"
	"freight/internal/handlers/rest/docket_post"
	"freight/internal/handlers/rest/docket_restore_post"
	"freight/internal/handlers/rest/dockets_get"
	"freight/internal/handlers/rest/eway_delete"
	"freight/internal/handlers/rest/eway_put"
	"freight/internal/handlers/tasks/coloader_reconcile"
	"freight/internal/pkg/config"
	"freight/internal/pkg/distance"

	activityRepo "freight/internal/repository/activity"
	bookingRepo "freight/internal/repository/booking"
	coLoaderRepo "freight/internal/repository/coloader"
	counterRepo "freight/internal/repository/counter"
	docketRepo "freight/internal/repository/docket"
	invoiceRepo "freight/internal/repository/invoice"
	partyRepo "freight/internal/repository/party"
	activityService "freight/internal/service/activity"
	allocatorService "freight/internal/service/allocator"
	coloaderService "freight/internal/service/coloader"
	complianceService "freight/internal/service/compliance"
	depotscanService "freight/internal/service/depotscan"
	docketService "freight/internal/service/docket"

	"freight/pkg/background"
	"freight/pkg/logger"
	"freight/pkg/querier"
	"freight/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ReconcileInterval time.Duration
)

type Application struct {
	ServiceDocket     ServiceDocket
	ServiceActivity   ServiceActivity
	ServiceCompliance ServiceCompliance
	ServiceCoLoader   ServiceCoLoader
	BackgroundWorkers *background.Worker
}

type ServiceDocket interface {
	docket_post.Service
	docket_get.Service
	dockets_get.Service
	docket_cancel_post.Service
	docket_restore_post.Service
}

type ServiceActivity interface {
	activity_post.Service
	activities_get.Service
	activity_delete.Service
	docket_get.StateReader
}

type ServiceCompliance interface {
	docket_get.Compliance
	eway_put.Service
	eway_delete.Service
}

type ServiceCoLoader interface {
	coloader_post.Service
	coloader_delete.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideReconcileInterval,

		provideCounterRepository,
		provideDocketRepository,
		providePartyRepository,
		provideBookingRepository,
		provideInvoiceRepository,
		provideActivityRepository,
		provideCoLoaderRepository,

		provideImageGateway,

		provideAllocator,
		distance.New,
		provideServiceActivity,
		provideServiceDocket,
		provideServiceCoLoader,
		provideServiceCompliance,

		provideCoLoaderReconcileTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDocket), new(*docketService.Docket)),
		wire.Bind(new(ServiceActivity), new(*activityService.Ledger)),
		wire.Bind(new(ServiceCompliance), new(*complianceService.Compliance)),
		wire.Bind(new(ServiceCoLoader), new(*coloaderService.Guard)),

		wire.Bind(new(allocatorService.Repository), new(*counterRepo.Repository)),

		wire.Bind(new(docketService.Repository), new(*docketRepo.Repository)),
		wire.Bind(new(docketService.PartyRepository), new(*partyRepo.Repository)),
		wire.Bind(new(docketService.BookingRepository), new(*bookingRepo.Repository)),
		wire.Bind(new(docketService.InvoiceRepository), new(*invoiceRepo.Repository)),
		wire.Bind(new(docketService.CoLoaderReader), new(*coLoaderRepo.Repository)),
		wire.Bind(new(docketService.Allocator), new(*allocatorService.Allocator)),
		wire.Bind(new(docketService.ActivityLedger), new(*activityService.Ledger)),
		wire.Bind(new(docketService.DistanceEstimator), new(*distance.Estimator)),
		wire.Bind(new(docketService.TxManager), new(*tx.Manager)),

		wire.Bind(new(activityService.Repository), new(*activityRepo.Repository)),
		wire.Bind(new(activityService.DocketReader), new(*docketRepo.Repository)),
		wire.Bind(new(activityService.ImageStore), new(*imagehost.Gateway)),

		wire.Bind(new(coloaderService.Repository), new(*coLoaderRepo.Repository)),
		wire.Bind(new(coloaderService.DocketRepository), new(*docketRepo.Repository)),
		wire.Bind(new(coloaderService.ImageStore), new(*imagehost.Gateway)),
		wire.Bind(new(coloaderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(complianceService.Repository), new(*invoiceRepo.Repository)),

		wire.Bind(new(coloader_reconcile.Service), new(*coloaderService.Guard)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ScanService *depotscanService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-depot-scan)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideDocketRepository,
		provideActivityRepository,

		provideImageGateway,

		provideServiceActivity,
		provideServiceDepotScan,

		wire.Bind(new(activityService.Repository), new(*activityRepo.Repository)),
		wire.Bind(new(activityService.DocketReader), new(*docketRepo.Repository)),
		wire.Bind(new(activityService.ImageStore), new(*imagehost.Gateway)),

		wire.Bind(new(depotscanService.DocketRepository), new(*docketRepo.Repository)),
		wire.Bind(new(depotscanService.Ledger), new(*activityService.Ledger)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCounterRepository(querier *querier.Querier) *counterRepo.Repository {
	return counterRepo.New(querier)
}

func provideDocketRepository(querier *querier.Querier) *docketRepo.Repository {
	return docketRepo.New(querier)
}

func providePartyRepository(querier *querier.Querier) *partyRepo.Repository {
	return partyRepo.New(querier)
}

func provideBookingRepository(querier *querier.Querier) *bookingRepo.Repository {
	return bookingRepo.New(querier)
}

func provideInvoiceRepository(querier *querier.Querier) *invoiceRepo.Repository {
	return invoiceRepo.New(querier)
}

func provideActivityRepository(querier *querier.Querier) *activityRepo.Repository {
	return activityRepo.New(querier)
}

func provideCoLoaderRepository(querier *querier.Querier) *coLoaderRepo.Repository {
	return coLoaderRepo.New(querier)
}

func provideImageGateway(cfg *config.Config) *imagehost.Gateway {
	client := &http.Client{Timeout: cfg.ImageHost.RequestTimeout}
	return imagehost.New(client, cfg.ImageHost.BaseURL, cfg.ImageHost.APIKey)
}

func provideAllocator(repository allocatorService.Repository) *allocatorService.Allocator {
	return allocatorService.New(repository)
}

func provideServiceActivity(
	log logger.Logger,
	repository activityService.Repository,
	dockets activityService.DocketReader,
	images activityService.ImageStore,
) *activityService.Ledger {
	return activityService.New(log, repository, dockets, images)
}

func provideServiceDocket(
	repository docketService.Repository,
	parties docketService.PartyRepository,
	bookings docketService.BookingRepository,
	invoices docketService.InvoiceRepository,
	coLoaders docketService.CoLoaderReader,
	allocator docketService.Allocator,
	ledger docketService.ActivityLedger,
	estimator docketService.DistanceEstimator,
	txManager docketService.TxManager,
) *docketService.Docket {
	return docketService.New(
		repository,
		parties,
		bookings,
		invoices,
		coLoaders,
		allocator,
		ledger,
		estimator,
		txManager,
	)
}

func provideServiceCoLoader(
	log logger.Logger,
	repository coloaderService.Repository,
	dockets coloaderService.DocketRepository,
	images coloaderService.ImageStore,
	txManager coloaderService.TxManager,
) *coloaderService.Guard {
	return coloaderService.New(log, repository, dockets, images, txManager)
}

func provideServiceCompliance(repository complianceService.Repository) *complianceService.Compliance {
	return complianceService.New(repository)
}

func provideServiceDepotScan(
	dockets depotscanService.DocketRepository,
	ledger depotscanService.Ledger,
) *depotscanService.Service {
	return depotscanService.New(dockets, ledger)
}

func provideReconcileInterval(cfg *config.Config) ReconcileInterval {
	return ReconcileInterval(cfg.Tasks.CoLoaderReconcileInterval)
}

func provideCoLoaderReconcileTask(
	log logger.Logger,
	coLoaderService coloader_reconcile.Service,
	interval ReconcileInterval,
) *coloader_reconcile.CoLoaderReconcile {
	return coloader_reconcile.NewCoLoaderReconcile(log, coLoaderService, time.Duration(interval))
}

func provideTaskList(
	coLoaderReconcileTask *coloader_reconcile.CoLoaderReconcile,
) []background.Task {
	return []background.Task{
		coLoaderReconcileTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
