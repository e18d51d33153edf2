package mealbox

import (
	"time"

	"github.com/shopspring/decimal"
)

type MealBoxDB struct {
	ID               string
	VendorID         string
	Title            string
	Description      string
	Price            decimal.Decimal
	DiscountPercent  decimal.Decimal
	DiscountActive   bool
	MinQty           int
	MinLeadTimeDays  int
	MaxLeadTimeDays  int
	SampleAvailable  bool
	PackagingDetails string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
