package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
)

var maxDiscountPercent = decimal.NewFromInt(100)

func hasRequiredMealBoxFields(mealBox entities.MealBox) bool {
	return strings.TrimSpace(mealBox.VendorID) != "" &&
		strings.TrimSpace(mealBox.Title) != ""
}

func isValidDiscount(discountPercent decimal.Decimal) bool {
	return !discountPercent.IsNegative() &&
		discountPercent.LessThanOrEqual(maxDiscountPercent)
}
