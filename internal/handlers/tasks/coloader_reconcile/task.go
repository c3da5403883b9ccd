package coloader_reconcile

import (
	"context"
	"time"

	"freight/pkg/logger"
)

type Service interface {
	ReconcileFlags(ctx context.Context) (int, error)
}

// CoLoaderReconcile периодически чинит расхождения флага has_co_loader
// с фактическим наличием привязки.
type CoLoaderReconcile struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewCoLoaderReconcile(log logger.Logger, service Service, interval time.Duration) *CoLoaderReconcile {
	return &CoLoaderReconcile{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (c *CoLoaderReconcile) TTL() time.Duration {
	return c.interval
}

func (c *CoLoaderReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.interval)
	defer cancel()

	repaired, err := c.service.ReconcileFlags(ctxWithTimeout)

	if repaired > 0 {
		c.log.With(
			logger.NewField("repaired_flags", repaired),
		).Info("co-loader flag reconcile")
	}

	return err
}

func (c *CoLoaderReconcile) Info() string {
	return "co-loader flag reconcile"
}
