package mealbox_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/handlers/rest/convert"
	"marketplace/internal/service/catalog"
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
	mealBoxID := mux.Vars(r)["id"]

	mealBoxEntity, err := h.service.GetMealBox(r.Context(), mealBoxID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrMealBoxNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, catalog.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(convert.MealBoxToDTO(mealBoxEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
