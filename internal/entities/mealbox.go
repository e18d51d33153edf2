package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type MealBox struct {
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

// DiscountedPrice returns the effective unit price, rounded to 2 decimal
// places. Inactive discounts leave the list price untouched.
func (m *MealBox) DiscountedPrice() decimal.Decimal {
	if !m.DiscountActive || m.DiscountPercent.IsZero() {
		return m.Price.Round(2)
	}
	factor := decimal.NewFromInt(1).Sub(m.DiscountPercent.Div(decimal.NewFromInt(100)))
	return m.Price.Mul(factor).Round(2)
}

type MealBoxModify struct {
	Title            *string
	Description      *string
	Price            *decimal.Decimal
	DiscountPercent  *decimal.Decimal
	DiscountActive   *bool
	MinQty           *int
	MinLeadTimeDays  *int
	MaxLeadTimeDays  *int
	SampleAvailable  *bool
	PackagingDetails *string
}
