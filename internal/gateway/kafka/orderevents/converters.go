package orderevents

import (
	"time"

	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
)

// StatusChangedMessage is the wire form of an order event on the
// order.status.changed topic. The relay worker decodes the same struct.
type StatusChangedMessage struct {
	Action  string        `json:"action"`
	OrderID string        `json:"order_id"`
	Order   *OrderMessage `json:"order,omitempty"`
}

type OrderMessage struct {
	ID              string            `json:"id"`
	Code            string            `json:"code"`
	VendorID        string            `json:"vendor_id"`
	CustomerName    string            `json:"customer_name"`
	CustomerEmail   string            `json:"customer_email"`
	CustomerMobile  string            `json:"customer_mobile"`
	Items           []LineItemMessage `json:"items"`
	DeliveryAddress string            `json:"delivery_address"`
	LeadTimeDays    int               `json:"lead_time_days"`
	DeliveryDate    *time.Time        `json:"delivery_date,omitempty"`
	DeliveryTime    string            `json:"delivery_time,omitempty"`
	Status          string            `json:"status"`
	CancelReason    string            `json:"cancel_reason,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type LineItemMessage struct {
	MealBoxID       string          `json:"meal_box_id"`
	Title           string          `json:"title"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
}

func FromDomainEvent(event entities.OrderEvent) StatusChangedMessage {
	return StatusChangedMessage{
		Action:  event.Action,
		OrderID: event.OrderID,
		Order:   fromDomainOrder(event.Order),
	}
}

func (m StatusChangedMessage) ToDomain() entities.OrderEvent {
	return entities.OrderEvent{
		Action:  m.Action,
		OrderID: m.OrderID,
		Order:   toDomainOrder(m.Order),
	}
}

func fromDomainOrder(o *entities.Order) *OrderMessage {
	if o == nil {
		return nil
	}

	items := make([]LineItemMessage, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, LineItemMessage{
			MealBoxID:       item.MealBoxID,
			Title:           item.Title,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			DiscountedPrice: item.DiscountedPrice,
		})
	}

	return &OrderMessage{
		ID:              o.ID,
		Code:            o.Code,
		VendorID:        o.VendorID,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerMobile:  o.CustomerMobile,
		Items:           items,
		DeliveryAddress: o.DeliveryAddress,
		LeadTimeDays:    o.LeadTimeDays,
		DeliveryDate:    o.DeliveryDate,
		DeliveryTime:    o.DeliveryTime,
		Status:          o.Status.String(),
		CancelReason:    o.CancelReason,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toDomainOrder(m *OrderMessage) *entities.Order {
	if m == nil {
		return nil
	}

	items := make([]entities.LineItem, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, entities.LineItem{
			MealBoxID:       item.MealBoxID,
			Title:           item.Title,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			DiscountedPrice: item.DiscountedPrice,
		})
	}

	return &entities.Order{
		ID:              m.ID,
		Code:            m.Code,
		VendorID:        m.VendorID,
		CustomerName:    m.CustomerName,
		CustomerEmail:   m.CustomerEmail,
		CustomerMobile:  m.CustomerMobile,
		Items:           items,
		DeliveryAddress: m.DeliveryAddress,
		LeadTimeDays:    m.LeadTimeDays,
		DeliveryDate:    m.DeliveryDate,
		DeliveryTime:    m.DeliveryTime,
		Status:          entities.OrderStatusType(m.Status),
		CancelReason:    m.CancelReason,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
