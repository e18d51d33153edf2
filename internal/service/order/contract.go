//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

type ListFilter struct {
	Status *entities.OrderStatusType
	Page   int
	Limit  int
}

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	ListByVendor(ctx context.Context, vendorID string, filter ListFilter) ([]entities.Order, error)

	// UpdateStatusGuarded applies modify only while the order is still in
	// fromStatus. A lost race surfaces as ErrInvalidTransition.
	UpdateStatusGuarded(ctx context.Context, orderID string, fromStatus entities.OrderStatusType, modify entities.OrderModify) (*entities.Order, error)

	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	CountPendingOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type CatalogService interface {
	GetMealBox(ctx context.Context, mealBoxID string) (*entities.MealBox, error)
}

type Notifier interface {
	Notify(ctx context.Context, order *entities.Order, action string)
}

type CodeFactory interface {
	NewCode(createdAt time.Time, dailySequence int64) string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
