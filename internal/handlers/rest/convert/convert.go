// Package convert maps domain entities onto the generated API DTOs. Money
// fields serialize as fixed-point strings.
package convert

import (
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
)

func OrderToDTO(orderEntity *entities.Order) dto.Order {
	items := make([]dto.OrderLineItem, 0, len(orderEntity.Items))
	for _, item := range orderEntity.Items {
		items = append(items, dto.OrderLineItem{
			MealBoxID:       item.MealBoxID,
			Title:           item.Title,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice.StringFixed(2),
			DiscountedPrice: item.DiscountedPrice.StringFixed(2),
		})
	}

	return dto.Order{
		ID:              orderEntity.ID,
		Code:            orderEntity.Code,
		VendorID:        orderEntity.VendorID,
		CustomerName:    orderEntity.CustomerName,
		CustomerEmail:   orderEntity.CustomerEmail,
		CustomerMobile:  orderEntity.CustomerMobile,
		Items:           items,
		DeliveryAddress: orderEntity.DeliveryAddress,
		LeadTimeDays:    orderEntity.LeadTimeDays,
		DeliveryDate:    orderEntity.DeliveryDate,
		DeliveryTime:    orderEntity.DeliveryTime,
		Status:          orderEntity.Status.String(),
		CancelReason:    orderEntity.CancelReason,
		Total:           orderEntity.Total().StringFixed(2),
		CreatedAt:       orderEntity.CreatedAt,
		UpdatedAt:       orderEntity.UpdatedAt,
	}
}

func TrackingToDTO(tracking *entities.OrderTracking) dto.OrderTracking {
	return dto.OrderTracking{
		OrderID:      tracking.OrderID,
		Code:         tracking.Code,
		Status:       tracking.Status.String(),
		DeliveryDate: tracking.DeliveryDate,
		DeliveryTime: tracking.DeliveryTime,
		UpdatedAt:    tracking.UpdatedAt,
	}
}

func MealBoxToDTO(mealBox *entities.MealBox) dto.MealBox {
	return dto.MealBox{
		ID:               mealBox.ID,
		VendorID:         mealBox.VendorID,
		Title:            mealBox.Title,
		Description:      mealBox.Description,
		Price:            mealBox.Price.StringFixed(2),
		DiscountPercent:  mealBox.DiscountPercent.StringFixed(2),
		DiscountActive:   mealBox.DiscountActive,
		MinQty:           mealBox.MinQty,
		MinLeadTimeDays:  mealBox.MinLeadTimeDays,
		MaxLeadTimeDays:  mealBox.MaxLeadTimeDays,
		SampleAvailable:  mealBox.SampleAvailable,
		PackagingDetails: mealBox.PackagingDetails,
		CreatedAt:        mealBox.CreatedAt,
		UpdatedAt:        mealBox.UpdatedAt,
	}
}
