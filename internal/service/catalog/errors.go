package catalog

import "errors"

var (
	ErrMealBoxNotFound       = errors.New("meal box not found")
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidDiscount       = errors.New("invalid discount percent")
	ErrInvalidMinQty         = errors.New("invalid minimum quantity")
	ErrInvalidLeadTimeBounds = errors.New("invalid lead time bounds")
)
