package tracking

import (
	"context"
	"time"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

const (
	// EventTrackingUpdated goes to customers subscribed to a single order.
	EventTrackingUpdated = "order.tracking.updated"
	// EventOrderUpdated goes to the vendor dashboard room.
	EventOrderUpdated = "order.updated"
)

func OrderTopic(orderID string) string {
	return "order:" + orderID
}

func VendorTopic(vendorID string) string {
	return "vendor:" + vendorID
}

// Notifier fans committed order changes out to the in-process hub rooms and
// to the order-events topic. Delivery is best effort: a failed publish is
// logged and swallowed, it never fails the transition that triggered it.
type Notifier struct {
	log     handlerLogger
	hub     Hub
	gateway EventGateway
}

func New(log handlerLogger, hub Hub, gateway EventGateway) *Notifier {
	return &Notifier{
		log:     log,
		hub:     hub,
		gateway: gateway,
	}
}

// produceTimeout bounds the detached Kafka produce. It exceeds the
// gateway's retry budget so the retrier, not the context, gives up first.
const produceTimeout = 10 * time.Second

func (n *Notifier) Notify(_ context.Context, order *entities.Order, action string) {
	if order == nil {
		return
	}

	event := entities.OrderEvent{
		Action:  action,
		OrderID: order.ID,
		Order:   order,
	}

	n.hub.Publish(OrderTopic(order.ID), EventTrackingUpdated, event)
	n.hub.Publish(VendorTopic(order.VendorID), EventOrderUpdated, event)

	// The produce retries with backoff and can stall for seconds on a
	// broker outage. The transition is already committed, so the caller
	// never waits: dispatch on a detached context and only log failures.
	go func() {
		produceCtx, cancel := context.WithTimeout(context.Background(), produceTimeout)
		defer cancel()

		if err := n.gateway.ProduceStatusChanged(produceCtx, event); err != nil {
			n.log.Error("Failed to produce order status event",
				logger.NewField("order", order.ID),
				logger.NewField("action", action),
				logger.NewField("error", err),
			)
		}
	}()
}
