package mealboxes_get

import (
	"encoding/json"
	"net/http"

	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/convert"
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
	vendorID := r.URL.Query().Get("vendor_id")

	mealBoxes, err := h.service.ListMealBoxes(r.Context(), vendorID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	mealBoxesDTO := make([]dto.MealBox, 0, len(mealBoxes))
	for i := range mealBoxes {
		mealBoxesDTO = append(mealBoxesDTO, convert.MealBoxToDTO(&mealBoxes[i]))
	}

	response := dto.MealBoxList{
		MealBoxes: mealBoxesDTO,
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
