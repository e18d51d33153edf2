package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID              string
	Code            string
	VendorID        string
	CustomerName    string
	CustomerEmail   string
	CustomerMobile  string
	DeliveryAddress string
	LeadTimeDays    int
	DeliveryDate    *time.Time
	DeliveryTime    string
	Status          string
	CancelReason    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type LineItemDB struct {
	OrderID         string
	MealBoxID       string
	Title           string
	Quantity        int
	UnitPrice       decimal.Decimal
	DiscountedPrice decimal.Decimal
}

type OrderModifyDB struct {
	LeadTimeDays *int
	DeliveryDate *time.Time
	DeliveryTime *string
	Status       *string
	CancelReason *string
}
