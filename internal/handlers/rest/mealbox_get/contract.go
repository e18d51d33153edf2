//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=mealbox_get_test
package mealbox_get

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
	GetMealBox(ctx context.Context, mealBoxID string) (*entities.MealBox, error)
}
