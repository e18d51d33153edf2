package order

import (
	"marketplace/internal/entities"
)

func ToDomain(o *OrderDB, items []LineItemDB) *entities.Order {
	if o == nil {
		return nil
	}

	orderEntity := &entities.Order{
		ID:              o.ID,
		Code:            o.Code,
		VendorID:        o.VendorID,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerMobile:  o.CustomerMobile,
		Items:           make([]entities.LineItem, 0, len(items)),
		DeliveryAddress: o.DeliveryAddress,
		LeadTimeDays:    o.LeadTimeDays,
		DeliveryDate:    o.DeliveryDate,
		DeliveryTime:    o.DeliveryTime,
		Status:          entities.OrderStatusType(o.Status),
		CancelReason:    o.CancelReason,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}

	for _, item := range items {
		orderEntity.Items = append(orderEntity.Items, entities.LineItem{
			MealBoxID:       item.MealBoxID,
			Title:           item.Title,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			DiscountedPrice: item.DiscountedPrice,
		})
	}

	return orderEntity
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderModifyDB := &OrderModifyDB{}

	if orderModify.LeadTimeDays != nil {
		orderModifyDB.LeadTimeDays = orderModify.LeadTimeDays
	}
	if orderModify.DeliveryDate != nil {
		orderModifyDB.DeliveryDate = orderModify.DeliveryDate
	}
	if orderModify.DeliveryTime != nil {
		orderModifyDB.DeliveryTime = orderModify.DeliveryTime
	}
	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderModifyDB.Status = &status
	}
	if orderModify.CancelReason != nil {
		orderModifyDB.CancelReason = orderModify.CancelReason
	}

	return orderModifyDB
}

func FromDomainItems(orderID string, items []entities.LineItem) []LineItemDB {
	itemsDB := make([]LineItemDB, 0, len(items))
	for _, item := range items {
		itemsDB = append(itemsDB, LineItemDB{
			OrderID:         orderID,
			MealBoxID:       item.MealBoxID,
			Title:           item.Title,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			DiscountedPrice: item.DiscountedPrice,
		})
	}
	return itemsDB
}
