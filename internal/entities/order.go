package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID              string
	Code            string
	VendorID        string
	CustomerName    string
	CustomerEmail   string
	CustomerMobile  string
	Items           []LineItem
	DeliveryAddress string
	LeadTimeDays    int
	DeliveryDate    *time.Time
	DeliveryTime    string
	Status          OrderStatusType
	CancelReason    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// LineItem is a snapshot of a meal box at the moment the order was placed.
// Prices are frozen here, later catalog edits never touch existing orders.
type LineItem struct {
	MealBoxID       string
	Title           string
	Quantity        int
	UnitPrice       decimal.Decimal
	DiscountedPrice decimal.Decimal
}

func (li LineItem) Subtotal() decimal.Decimal {
	return li.DiscountedPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderConfirmed OrderStatusType = "confirmed"
	OrderDelivered OrderStatusType = "delivered"
	OrderCancelled OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// Terminal reports whether no further transitions are allowed from s.
func (s OrderStatusType) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

type OrderModify struct {
	LeadTimeDays *int
	DeliveryDate *time.Time
	DeliveryTime *string
	Status       *OrderStatusType
	CancelReason *string
}

// OrderDraft carries the customer supplied part of a new order before
// catalog prices and lead times are resolved.
type OrderDraft struct {
	CustomerName    string
	CustomerEmail   string
	CustomerMobile  string
	Items           []DraftItem
	DeliveryAddress string
	LeadTimeDays    int
	DeliveryTime    string
}

type DraftItem struct {
	MealBoxID string
	Quantity  int
}

// OrderTracking is the read model served to customers polling or
// subscribed to an order room.
type OrderTracking struct {
	OrderID      string
	Code         string
	Status       OrderStatusType
	DeliveryDate *time.Time
	DeliveryTime string
	UpdatedAt    time.Time
}

// OrderEvent is the payload fanned out to tracking subscribers and to the
// order status topic after a lifecycle transition commits.
type OrderEvent struct {
	Action  string
	OrderID string
	Order   *Order
}

const (
	OrderActionCreated   = "created"
	OrderActionConfirmed = "confirmed"
	OrderActionCancelled = "cancelled"
	OrderActionDelivered = "delivered"
)
