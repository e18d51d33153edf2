//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_tracking_get_test
package order_tracking_get

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetTracking(ctx context.Context, orderID string) (*entities.OrderTracking, error)
}
