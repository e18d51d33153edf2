//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_cancel_put_test
package order_cancel_put

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
	CancelOrder(ctx context.Context, orderID, actorVendorID, reason string) (*entities.Order, error)
}
