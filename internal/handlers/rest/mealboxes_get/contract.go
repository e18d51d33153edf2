//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=mealboxes_get_test
package mealboxes_get

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListMealBoxes(ctx context.Context, vendorID string) ([]entities.MealBox, error)
}
