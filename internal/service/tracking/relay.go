package tracking

import (
	"context"
	"errors"

	"marketplace/internal/entities"
)

var ErrEmptyEvent = errors.New("order event has no order id")

// Relay republishes order events consumed from the broker into the local
// hub, so subscribers connected to this replica see changes committed by
// any other replica.
type Relay struct {
	log handlerLogger
	hub Hub
}

func NewRelay(log handlerLogger, hub Hub) *Relay {
	return &Relay{
		log: log,
		hub: hub,
	}
}

func (r *Relay) RelayStatusChange(_ context.Context, event entities.OrderEvent) error {
	if event.OrderID == "" {
		return ErrEmptyEvent
	}

	r.hub.Publish(OrderTopic(event.OrderID), EventTrackingUpdated, event)

	if event.Order != nil && event.Order.VendorID != "" {
		r.hub.Publish(VendorTopic(event.Order.VendorID), EventOrderUpdated, event)
	}

	return nil
}
