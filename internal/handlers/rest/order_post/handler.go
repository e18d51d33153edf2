package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/convert"
	"marketplace/internal/service/catalog"
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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	items := make([]entities.DraftItem, 0, len(orderCreateDTO.Items))
	for _, item := range orderCreateDTO.Items {
		items = append(items, entities.DraftItem{
			MealBoxID: item.MealBoxID,
			Quantity:  item.Quantity,
		})
	}

	draft := entities.OrderDraft{
		CustomerName:    orderCreateDTO.CustomerName,
		CustomerEmail:   orderCreateDTO.CustomerEmail,
		CustomerMobile:  orderCreateDTO.CustomerMobile,
		Items:           items,
		DeliveryAddress: orderCreateDTO.DeliveryAddress,
	}
	if orderCreateDTO.LeadTimeDays != nil {
		draft.LeadTimeDays = *orderCreateDTO.LeadTimeDays
	}
	if orderCreateDTO.DeliveryTime != nil {
		draft.DeliveryTime = *orderCreateDTO.DeliveryTime
	}

	createdOrder, err := h.service.PlaceOrder(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidQuantity),
			errors.Is(err, order.ErrLeadTimeOutOfRange),
			errors.Is(err, order.ErrMixedVendors):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, catalog.ErrMealBoxNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(convert.OrderToDTO(createdOrder))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
