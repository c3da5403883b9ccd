package depot_scan

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"freight/internal/entities"
	"freight/internal/service/activity"
	"freight/internal/service/depotscan"
	"freight/internal/service/docket"
	"freight/pkg/logger"
	"github.com/IBM/sarama"
)

type Handler struct {
	scanService              Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, scanService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		scanService:              scanService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("depot.scan: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("depot.scan: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event scanEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("depot.scan handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("docket_no", event.DocketNo),
		logger.NewField("status", event.StatusCode),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("depot.scan processing")

	scannedAt, err := time.Parse(time.RFC3339, event.ScannedAt)
	if err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Error("depot.scan handler received bad scan time")
		sess.MarkMessage(message, "")
		return false
	}

	scan := depotscan.Scan{
		DocketNo:   event.DocketNo,
		StatusCode: entities.ActivityStatusCode(event.StatusCode),
		Label:      event.Label,
		Location:   event.Location,
		ScannedAt:  scannedAt,
	}

	created, err := h.scanService.ProcessScan(ctx, scan)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("depot.scan handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, docket.ErrDocketNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("depot.scan handler unknown docket number")

		case errors.Is(err, activity.ErrUnknownStatusCode):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("depot.scan handler unknown status code")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("depot.scan handler failed to process scan")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("docket", created.DocketID),
		logger.NewField("activity", created.ID),
		logger.NewField("status", created.StatusCode.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("depot.scan: processed")

	sess.MarkMessage(message, "")
	return false
}
