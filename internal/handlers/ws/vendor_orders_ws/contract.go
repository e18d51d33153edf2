//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vendor_orders_ws_test
package vendor_orders_ws

import (
	"marketplace/internal/pkg/ws"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Hub interface {
	Join(conn ws.Conn, topic string)
	Leave(conn ws.Conn, topic string)
}
