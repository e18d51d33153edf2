package mealbox

import (
	"marketplace/internal/entities"
)

func ToDomain(m *MealBoxDB) *entities.MealBox {
	if m == nil {
		return nil
	}
	return &entities.MealBox{
		ID:               m.ID,
		VendorID:         m.VendorID,
		Title:            m.Title,
		Description:      m.Description,
		Price:            m.Price,
		DiscountPercent:  m.DiscountPercent,
		DiscountActive:   m.DiscountActive,
		MinQty:           m.MinQty,
		MinLeadTimeDays:  m.MinLeadTimeDays,
		MaxLeadTimeDays:  m.MaxLeadTimeDays,
		SampleAvailable:  m.SampleAvailable,
		PackagingDetails: m.PackagingDetails,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func ToDomainList(mealBoxesDB []MealBoxDB) []entities.MealBox {
	if len(mealBoxesDB) == 0 {
		return []entities.MealBox{}
	}

	result := make([]entities.MealBox, len(mealBoxesDB))
	for i, mealBoxDB := range mealBoxesDB {
		result[i] = *ToDomain(&mealBoxDB)
	}
	return result
}
