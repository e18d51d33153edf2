//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_tracking_ws_test
package order_tracking_ws

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/internal/pkg/ws"
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

type Hub interface {
	Join(conn ws.Conn, topic string)
	Leave(conn ws.Conn, topic string)
}
