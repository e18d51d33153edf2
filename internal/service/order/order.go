package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"marketplace/internal/entities"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type Service struct {
	repository     Repository
	catalogService CatalogService
	notifier       Notifier
	codeFactory    CodeFactory
	txManager      TxManager
}

func New(
	repository Repository,
	catalogService CatalogService,
	notifier Notifier,
	codeFactory CodeFactory,
	txManager TxManager,
) *Service {
	return &Service{
		repository:     repository,
		catalogService: catalogService,
		notifier:       notifier,
		codeFactory:    codeFactory,
		txManager:      txManager,
	}
}

// PlaceOrder resolves the draft against the catalog, freezes prices and
// creates a pending order. The vendor is always taken from the meal boxes,
// never from the caller.
func (s *Service) PlaceOrder(ctx context.Context, draft entities.OrderDraft) (*entities.Order, error) {
	if !hasRequiredDraftFields(draft) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidEmail(draft.CustomerEmail) || !isValidMobile(draft.CustomerMobile) {
		return nil, ErrMissingRequiredFields
	}
	for _, item := range draft.Items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}

	boxes := make([]*entities.MealBox, 0, len(draft.Items))
	vendorID := ""
	for _, item := range draft.Items {
		box, err := s.catalogService.GetMealBox(ctx, item.MealBoxID)
		if err != nil {
			return nil, fmt.Errorf("resolve meal box %s: %w", item.MealBoxID, err)
		}
		if vendorID == "" {
			vendorID = box.VendorID
		} else if box.VendorID != vendorID {
			return nil, ErrMixedVendors
		}
		if item.Quantity < box.MinQty {
			return nil, ErrInvalidQuantity
		}
		boxes = append(boxes, box)
	}

	leadTimeDays := draft.LeadTimeDays
	if leadTimeDays == 0 {
		for _, box := range boxes {
			if box.MinLeadTimeDays > leadTimeDays {
				leadTimeDays = box.MinLeadTimeDays
			}
		}
	}
	for _, box := range boxes {
		if leadTimeDays < box.MinLeadTimeDays || leadTimeDays > box.MaxLeadTimeDays {
			return nil, ErrLeadTimeOutOfRange
		}
	}

	now := time.Now().UTC()
	deliveryDate := now.AddDate(0, 0, leadTimeDays)

	items := make([]entities.LineItem, 0, len(draft.Items))
	for i, item := range draft.Items {
		box := boxes[i]
		items = append(items, entities.LineItem{
			MealBoxID:       box.ID,
			Title:           box.Title,
			Quantity:        item.Quantity,
			UnitPrice:       box.Price.Round(2),
			DiscountedPrice: box.DiscountedPrice(),
		})
	}

	newOrder := entities.Order{
		ID:              uuid.NewString(),
		VendorID:        vendorID,
		CustomerName:    draft.CustomerName,
		CustomerEmail:   draft.CustomerEmail,
		CustomerMobile:  draft.CustomerMobile,
		Items:           items,
		DeliveryAddress: draft.DeliveryAddress,
		LeadTimeDays:    leadTimeDays,
		DeliveryDate:    &deliveryDate,
		DeliveryTime:    draft.DeliveryTime,
		Status:          entities.OrderPending,
	}

	var created *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		dailyCount, err := s.repository.CountCreatedSince(ctx, startOfDay(now))
		if err != nil {
			return fmt.Errorf("count orders for code sequence: %w", err)
		}

		newOrder.Code = s.codeFactory.NewCode(now, dailyCount+1)

		created, err = s.repository.Create(ctx, newOrder)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, created, entities.OrderActionCreated)
	return created, nil
}

// ConfirmOrder moves a pending order to confirmed. An optional LeadTimeDays
// in modify recomputes the delivery date, otherwise the supplied delivery
// date and time pass through verbatim.
func (s *Service) ConfirmOrder(ctx context.Context, orderID, actorVendorID string, modify entities.OrderModify) (*entities.Order, error) {
	existing, err := s.getOwnedOrder(ctx, orderID, actorVendorID)
	if err != nil {
		return nil, err
	}
	if existing.Status != entities.OrderPending {
		return nil, ErrInvalidTransition
	}

	if modify.LeadTimeDays != nil {
		if *modify.LeadTimeDays < 0 {
			return nil, ErrLeadTimeOutOfRange
		}
		deliveryDate := time.Now().UTC().AddDate(0, 0, *modify.LeadTimeDays)
		modify.DeliveryDate = &deliveryDate
	}

	newStatus := entities.OrderConfirmed
	modify.Status = &newStatus
	modify.CancelReason = nil

	updated, err := s.repository.UpdateStatusGuarded(ctx, orderID, entities.OrderPending, modify)
	if err != nil {
		return nil, fmt.Errorf("confirm order: %w", err)
	}

	s.notifier.Notify(ctx, updated, entities.OrderActionConfirmed)
	return updated, nil
}

// CancelOrder cancels a pending or confirmed order with a mandatory reason.
func (s *Service) CancelOrder(ctx context.Context, orderID, actorVendorID, reason string) (*entities.Order, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrMissingCancelReason
	}

	existing, err := s.getOwnedOrder(ctx, orderID, actorVendorID)
	if err != nil {
		return nil, err
	}
	if !isCancellable(existing.Status) {
		return nil, ErrInvalidTransition
	}

	newStatus := entities.OrderCancelled
	modify := entities.OrderModify{
		Status:       &newStatus,
		CancelReason: &reason,
	}

	updated, err := s.repository.UpdateStatusGuarded(ctx, orderID, existing.Status, modify)
	if err != nil {
		return nil, fmt.Errorf("cancel order: %w", err)
	}

	s.notifier.Notify(ctx, updated, entities.OrderActionCancelled)
	return updated, nil
}

// DeliverOrder completes a confirmed order. Delivery date and time default
// to the current moment when the vendor omits them.
func (s *Service) DeliverOrder(ctx context.Context, orderID, actorVendorID string, modify entities.OrderModify) (*entities.Order, error) {
	existing, err := s.getOwnedOrder(ctx, orderID, actorVendorID)
	if err != nil {
		return nil, err
	}
	if existing.Status != entities.OrderConfirmed {
		return nil, ErrInvalidTransition
	}

	now := time.Now().UTC()
	if modify.DeliveryDate == nil {
		modify.DeliveryDate = &now
	}
	if modify.DeliveryTime == nil {
		deliveryTime := now.Format("15:04")
		modify.DeliveryTime = &deliveryTime
	}

	newStatus := entities.OrderDelivered
	modify.Status = &newStatus
	modify.CancelReason = nil
	modify.LeadTimeDays = nil

	updated, err := s.repository.UpdateStatusGuarded(ctx, orderID, entities.OrderConfirmed, modify)
	if err != nil {
		return nil, fmt.Errorf("deliver order: %w", err)
	}

	s.notifier.Notify(ctx, updated, entities.OrderActionDelivered)
	return updated, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrMissingRequiredFields
	}

	existing, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return existing, nil
}

// GetTracking returns the customer-facing tracking projection. Reads never
// notify.
func (s *Service) GetTracking(ctx context.Context, orderID string) (*entities.OrderTracking, error) {
	existing, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
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

func (s *Service) ListVendorOrders(ctx context.Context, vendorID string, filter ListFilter) ([]entities.Order, error) {
	if strings.TrimSpace(vendorID) == "" {
		return nil, ErrMissingRequiredFields
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	orders, err := s.repository.ListByVendor(ctx, vendorID, filter)
	if err != nil {
		return nil, fmt.Errorf("list vendor orders: %w", err)
	}
	return orders, nil
}

func (s *Service) getOwnedOrder(ctx context.Context, orderID, actorVendorID string) (*entities.Order, error) {
	if strings.TrimSpace(orderID) == "" || strings.TrimSpace(actorVendorID) == "" {
		return nil, ErrMissingRequiredFields
	}

	existing, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if !s.isOrderVendor(ctx, actorVendorID, existing) {
		return nil, ErrNotOrderVendor
	}
	return existing, nil
}

// isOrderVendor checks the denormalized vendor first and falls back to the
// catalog vendor of the first line item. Orders created before vendor
// denormalization carry no VendorID of their own.
func (s *Service) isOrderVendor(ctx context.Context, actorVendorID string, existing *entities.Order) bool {
	if existing.VendorID == actorVendorID {
		return true
	}
	if len(existing.Items) == 0 {
		return false
	}

	box, err := s.catalogService.GetMealBox(ctx, existing.Items[0].MealBoxID)
	if err != nil {
		return false
	}
	return box.VendorID == actorVendorID
}

// CountStalePending reports pending orders that have not moved for longer
// than staleAfter. The background monitor exports it as a gauge.
func (s *Service) CountStalePending(ctx context.Context, staleAfter time.Duration) (int64, error) {
	cutoff := time.Now().Add(-staleAfter)

	count, err := s.repository.CountPendingOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("count stale pending orders: %w", err)
	}
	return count, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
