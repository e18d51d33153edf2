package mealbox_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/convert"
	"marketplace/internal/service/catalog"
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
	var mealBoxCreateDTO dto.MealBoxCreate
	err := json.NewDecoder(r.Body).Decode(&mealBoxCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	mealBoxEntity, err := fromCreateDTO(r.Header.Get(vendorHeader), mealBoxCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	createdMealBox, err := h.service.CreateMealBox(r.Context(), mealBoxEntity)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrMissingRequiredFields),
			errors.Is(err, catalog.ErrInvalidPrice),
			errors.Is(err, catalog.ErrInvalidDiscount),
			errors.Is(err, catalog.ErrInvalidMinQty),
			errors.Is(err, catalog.ErrInvalidLeadTimeBounds):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(convert.MealBoxToDTO(createdMealBox))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func fromCreateDTO(vendorID string, mealBoxCreateDTO dto.MealBoxCreate) (entities.MealBox, error) {
	price, err := decimal.NewFromString(mealBoxCreateDTO.Price)
	if err != nil {
		return entities.MealBox{}, err
	}

	mealBoxEntity := entities.MealBox{
		VendorID: vendorID,
		Title:    mealBoxCreateDTO.Title,
		Price:    price,
		MinQty:   1,
	}

	if mealBoxCreateDTO.Description != nil {
		mealBoxEntity.Description = *mealBoxCreateDTO.Description
	}
	if mealBoxCreateDTO.DiscountPercent != nil {
		discount, err := decimal.NewFromString(*mealBoxCreateDTO.DiscountPercent)
		if err != nil {
			return entities.MealBox{}, err
		}
		mealBoxEntity.DiscountPercent = discount
	}
	if mealBoxCreateDTO.DiscountActive != nil {
		mealBoxEntity.DiscountActive = *mealBoxCreateDTO.DiscountActive
	}
	if mealBoxCreateDTO.MinQty != nil {
		mealBoxEntity.MinQty = *mealBoxCreateDTO.MinQty
	}
	if mealBoxCreateDTO.MinLeadTimeDays != nil {
		mealBoxEntity.MinLeadTimeDays = *mealBoxCreateDTO.MinLeadTimeDays
	}
	if mealBoxCreateDTO.MaxLeadTimeDays != nil {
		mealBoxEntity.MaxLeadTimeDays = *mealBoxCreateDTO.MaxLeadTimeDays
	}
	if mealBoxCreateDTO.SampleAvailable != nil {
		mealBoxEntity.SampleAvailable = *mealBoxCreateDTO.SampleAvailable
	}
	if mealBoxCreateDTO.PackagingDetails != nil {
		mealBoxEntity.PackagingDetails = *mealBoxCreateDTO.PackagingDetails
	}

	return mealBoxEntity, nil
}
