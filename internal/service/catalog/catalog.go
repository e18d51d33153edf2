package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"marketplace/internal/entities"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) CreateMealBox(ctx context.Context, mealBox entities.MealBox) (*entities.MealBox, error) {
	if !hasRequiredMealBoxFields(mealBox) {
		return nil, ErrMissingRequiredFields
	}
	if mealBox.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if !isValidDiscount(mealBox.DiscountPercent) {
		return nil, ErrInvalidDiscount
	}
	if mealBox.MinQty < 1 {
		return nil, ErrInvalidMinQty
	}
	if mealBox.MinLeadTimeDays < 0 || mealBox.MaxLeadTimeDays < mealBox.MinLeadTimeDays {
		return nil, ErrInvalidLeadTimeBounds
	}

	mealBox.ID = uuid.NewString()

	created, err := s.repository.Create(ctx, mealBox)
	if err != nil {
		return nil, fmt.Errorf("create meal box: %w", err)
	}
	return created, nil
}

func (s *Service) GetMealBox(ctx context.Context, mealBoxID string) (*entities.MealBox, error) {
	if strings.TrimSpace(mealBoxID) == "" {
		return nil, ErrMissingRequiredFields
	}

	mealBox, err := s.repository.GetByID(ctx, mealBoxID)
	if err != nil {
		return nil, fmt.Errorf("get meal box: %w", err)
	}
	return mealBox, nil
}

// ListMealBoxes returns the whole catalog, or one vendor's part of it when
// vendorID is non-empty.
func (s *Service) ListMealBoxes(ctx context.Context, vendorID string) ([]entities.MealBox, error) {
	mealBoxes, err := s.repository.List(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list meal boxes: %w", err)
	}
	return mealBoxes, nil
}
