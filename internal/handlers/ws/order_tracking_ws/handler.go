package order_tracking_ws

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"marketplace/internal/handlers/rest/convert"
	"marketplace/internal/pkg/ws"
	"marketplace/internal/service/order"
	"marketplace/internal/service/tracking"
	"marketplace/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	service  Service
	hub      Hub
	upgrader websocket.Upgrader
}

func New(log handlerLogger, service Service, hub Hub) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		hub:     hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	snapshot, err := h.service.GetTracking(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Warn("websocket upgrade failed")
		return
	}

	// Initial snapshot so the subscriber does not have to wait for the
	// next status change.
	err = conn.WriteJSON(ws.Envelope{
		Event: tracking.EventTrackingUpdated,
		Data:  convert.TrackingToDTO(snapshot),
	})
	if err != nil {
		_ = conn.Close()
		return
	}

	topic := tracking.OrderTopic(orderID)
	h.hub.Join(conn, topic)
	defer func() {
		h.hub.Leave(conn, topic)
		_ = conn.Close()
	}()

	// Read pump. Inbound frames are ignored, the loop only detects close.
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}
