package vendor_orders_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/convert"
	"marketplace/internal/service/order"
	"marketplace/pkg/logger"
)

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
	vendorID := mux.Vars(r)["id"]

	filter := order.ListFilter{}
	query := r.URL.Query()

	if statusStr := query.Get("status"); statusStr != "" {
		status := entities.OrderStatusType(statusStr)
		switch status {
		case entities.OrderPending, entities.OrderConfirmed, entities.OrderCancelled, entities.OrderDelivered:
			filter.Status = &status
		default:
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	var err error
	if filter.Page, err = parseIntParam(query.Get("page")); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if filter.Limit, err = parseIntParam(query.Get("limit")); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orders, err := h.service.ListVendorOrders(r.Context(), vendorID, filter)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	ordersDTO := make([]dto.Order, 0, len(orders))
	for i := range orders {
		ordersDTO = append(ordersDTO, convert.OrderToDTO(&orders[i]))
	}

	response := dto.OrderList{
		Orders: ordersDTO,
		Page:   filter.Page,
		Limit:  filter.Limit,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseIntParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
