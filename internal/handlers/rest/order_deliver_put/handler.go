package order_deliver_put

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/convert"
	"marketplace/internal/service/order"
	"marketplace/pkg/logger"
)

const vendorHeader = "X-Vendor-ID"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	actorVendorID := r.Header.Get(vendorHeader)

	// body optional, delivery date/time then default to now
	var deliverDTO dto.OrderDeliver
	err := json.NewDecoder(r.Body).Decode(&deliverDTO)
	if err != nil && !errors.Is(err, io.EOF) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	modify := entities.OrderModify{
		DeliveryDate: deliverDTO.DeliveryDate,
		DeliveryTime: deliverDTO.DeliveryTime,
	}

	deliveredOrder, err := h.service.DeliverOrder(r.Context(), orderID, actorVendorID, modify)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrNotOrderVendor):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, order.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(convert.OrderToDTO(deliveredOrder))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
