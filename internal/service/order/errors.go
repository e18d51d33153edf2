package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrMissingCancelReason   = errors.New("missing cancel reason")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrLeadTimeOutOfRange    = errors.New("lead time out of range")
	ErrMixedVendors          = errors.New("items belong to different vendors")
	ErrOrderNotFound         = errors.New("order not found")
	ErrNotOrderVendor        = errors.New("actor is not the order vendor")
	ErrInvalidTransition     = errors.New("invalid order status transition")
)
