package order_confirm_put

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

	// the body is optional, confirm without it keeps the placed dates
	var confirmDTO dto.OrderConfirm
	err := json.NewDecoder(r.Body).Decode(&confirmDTO)
	if err != nil && !errors.Is(err, io.EOF) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	modify := entities.OrderModify{
		LeadTimeDays: confirmDTO.LeadTimeDays,
		DeliveryDate: confirmDTO.DeliveryDate,
		DeliveryTime: confirmDTO.DeliveryTime,
	}

	confirmedOrder, err := h.service.ConfirmOrder(r.Context(), orderID, actorVendorID, modify)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrLeadTimeOutOfRange):
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
	err = json.NewEncoder(w).Encode(convert.OrderToDTO(confirmedOrder))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
