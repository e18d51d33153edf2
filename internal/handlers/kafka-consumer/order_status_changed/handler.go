package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"marketplace/internal/gateway/kafka/orderevents"
	"marketplace/internal/service/tracking"
	"marketplace/pkg/logger"
)

type Handler struct {
	trackingService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, trackingService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		trackingService:          trackingService,
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
				h.log.Info("order.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Rebalance or consumer group shutdown.
			h.log.Info("order.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles a single Kafka message.
// Returns true when ConsumeClaim should stop (context cancelled).
// Returns false to keep consuming.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var wireEvent orderevents.StatusChangedMessage
	err := json.Unmarshal(message.Value, &wireEvent)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", wireEvent.OrderID),
		logger.NewField("action", wireEvent.Action),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.status.changed processing")

	err = h.trackingService.RelayStatusChange(ctx, wireEvent.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, tracking.ErrEmptyEvent):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler skipped event without order id")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler failed to relay event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("order.status.changed: relayed")

	sess.MarkMessage(message, "")
	return false
}
