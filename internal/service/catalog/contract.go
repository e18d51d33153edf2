//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=catalog_test
package catalog

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, mealBox entities.MealBox) (*entities.MealBox, error)
	GetByID(ctx context.Context, mealBoxID string) (*entities.MealBox, error)
	List(ctx context.Context, vendorID string) ([]entities.MealBox, error)
}
