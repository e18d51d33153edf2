package tracking

import (
	"context"
	"fmt"
	"strings"

	"marketplace/internal/entities"
	"marketplace/internal/service/order"
)

// Query serves the tracking projection without the full order service. The
// relay worker uses it for websocket snapshots, where no transitions and no
// notifications ever happen.
type Query struct {
	repository OrderRepository
}

func NewQuery(repository OrderRepository) *Query {
	return &Query{
		repository: repository,
	}
}

func (q *Query) GetTracking(ctx context.Context, orderID string) (*entities.OrderTracking, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, order.ErrMissingRequiredFields
	}

	existing, err := q.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return &entities.OrderTracking{
		OrderID:      existing.ID,
		Code:         existing.Code,
		Status:       existing.Status,
		DeliveryDate: existing.DeliveryDate,
		DeliveryTime: existing.DeliveryTime,
		UpdatedAt:    existing.UpdatedAt,
	}, nil
}
