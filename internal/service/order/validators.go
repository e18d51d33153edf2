package order

import (
	"strings"

	"marketplace/internal/entities"
)

func hasRequiredDraftFields(draft entities.OrderDraft) bool {
	if strings.TrimSpace(draft.CustomerName) == "" ||
		strings.TrimSpace(draft.CustomerEmail) == "" ||
		strings.TrimSpace(draft.CustomerMobile) == "" ||
		strings.TrimSpace(draft.DeliveryAddress) == "" {
		return false
	}

	if len(draft.Items) == 0 {
		return false
	}
	for _, item := range draft.Items {
		if strings.TrimSpace(item.MealBoxID) == "" {
			return false
		}
	}
	return true
}

func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func isValidMobile(mobile string) bool {
	mobile = strings.TrimSpace(mobile)
	mobile = strings.TrimPrefix(mobile, "+")
	if mobile == "" {
		return false
	}

	for _, char := range mobile {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isCancellable(status entities.OrderStatusType) bool {
	return status == entities.OrderPending || status == entities.OrderConfirmed
}
