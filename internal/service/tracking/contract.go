//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type Hub interface {
	Publish(topic, event string, payload any)
}

type EventGateway interface {
	ProduceStatusChanged(ctx context.Context, event entities.OrderEvent) error
}

type OrderRepository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
