package vendor_orders_ws

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"marketplace/internal/service/tracking"
	"marketplace/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	hub      Hub
	upgrader websocket.Upgrader
}

func New(log handlerLogger, hub Hub) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vendorID := mux.Vars(r)["id"]
	if vendorID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Warn("websocket upgrade failed")
		return
	}

	topic := tracking.VendorTopic(vendorID)
	h.hub.Join(conn, topic)
	defer func() {
		h.hub.Leave(conn, topic)
		_ = conn.Close()
	}()

	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}
