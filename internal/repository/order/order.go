package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, code, vendor_id, customer_name, customer_email, customer_mobile,
		delivery_address, lead_time_days, delivery_date, delivery_time, status, cancel_reason,
		created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	query := `INSERT INTO orders (id, code, vendor_id, customer_name, customer_email, customer_mobile,
			delivery_address, lead_time_days, delivery_date, delivery_time, status, cancel_reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		orderEntity.ID,
		orderEntity.Code,
		orderEntity.VendorID,
		orderEntity.CustomerName,
		orderEntity.CustomerEmail,
		orderEntity.CustomerMobile,
		orderEntity.DeliveryAddress,
		orderEntity.LeadTimeDays,
		orderEntity.DeliveryDate,
		orderEntity.DeliveryTime,
		orderEntity.Status.String(),
		orderEntity.CancelReason,
	)

	orderDB, err := scanOrder(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("duplicate order id %s: %w", orderEntity.ID, err)
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	itemsDB := FromDomainItems(orderDB.ID, orderEntity.Items)
	if len(itemsDB) > 0 {
		builder := qb.Insert("order_items").
			Columns("order_id", "meal_box_id", "title", "quantity", "unit_price", "discounted_price")
		for _, item := range itemsDB {
			builder = builder.Values(item.OrderID, item.MealBoxID, item.Title, item.Quantity, item.UnitPrice, item.DiscountedPrice)
		}

		itemsQuery, args, err := builder.ToSql()
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository create error: %w", err)
		}
		if _, err := r.querier.Exec(ctx, itemsQuery, args...); err != nil {
			return nil, fmt.Errorf("unexpected order repository create items error: %w", err)
		}
	}

	return ToDomain(orderDB, itemsDB), nil
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	items, err := r.getItems(ctx, []string{orderDB.ID})
	if err != nil {
		return nil, err
	}

	return ToDomain(orderDB, items[orderDB.ID]), nil
}

func (r *Repository) ListByVendor(ctx context.Context, vendorID string, filter order.ListFilter) ([]entities.Order, error) {
	builder := qb.
		Select("id", "code", "vendor_id", "customer_name", "customer_email", "customer_mobile",
			"delivery_address", "lead_time_days", "delivery_date", "delivery_time", "status", "cancel_reason",
			"created_at", "updated_at").
		From("orders").
		Where(sq.Eq{"vendor_id": vendorID})

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	builder = builder.
		OrderBy("created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64((filter.Page - 1) * filter.Limit))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	ordersDB := make([]OrderDB, 0, filter.Limit)
	for rows.Next() {
		var orderDB OrderDB
		err := rows.Scan(
			&orderDB.ID,
			&orderDB.Code,
			&orderDB.VendorID,
			&orderDB.CustomerName,
			&orderDB.CustomerEmail,
			&orderDB.CustomerMobile,
			&orderDB.DeliveryAddress,
			&orderDB.LeadTimeDays,
			&orderDB.DeliveryDate,
			&orderDB.DeliveryTime,
			&orderDB.Status,
			&orderDB.CancelReason,
			&orderDB.CreatedAt,
			&orderDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		ordersDB = append(ordersDB, orderDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	orderIDs := make([]string, 0, len(ordersDB))
	for _, orderDB := range ordersDB {
		orderIDs = append(orderIDs, orderDB.ID)
	}

	items, err := r.getItems(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(ordersDB))
	for i := range ordersDB {
		result = append(result, *ToDomain(&ordersDB[i], items[ordersDB[i].ID]))
	}
	return result, nil
}

// UpdateStatusGuarded applies the modification only while the row still
// holds fromStatus. Zero matched rows means the transition lost a race or
// the order is gone, both surface as ErrInvalidTransition.
func (r *Repository) UpdateStatusGuarded(ctx context.Context, orderID string, fromStatus entities.OrderStatusType, orderModify entities.OrderModify) (*entities.Order, error) {
	orderModifyDB := FromDomainModify(&orderModify)

	builder := qb.
		Update("orders")

	if orderModifyDB.Status != nil {
		builder = builder.Set("status", orderModifyDB.Status)
	}
	if orderModifyDB.LeadTimeDays != nil {
		builder = builder.Set("lead_time_days", orderModifyDB.LeadTimeDays)
	}
	if orderModifyDB.DeliveryDate != nil {
		builder = builder.Set("delivery_date", orderModifyDB.DeliveryDate)
	}
	if orderModifyDB.DeliveryTime != nil {
		builder = builder.Set("delivery_time", orderModifyDB.DeliveryTime)
	}
	if orderModifyDB.CancelReason != nil {
		builder = builder.Set("cancel_reason", orderModifyDB.CancelReason)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderID, "status": fromStatus.String()}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrInvalidTransition
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	items, err := r.getItems(ctx, []string{orderDB.ID})
	if err != nil {
		return nil, err
	}

	return ToDomain(orderDB, items[orderDB.ID]), nil
}

func (r *Repository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE created_at >= $1`

	var count int64
	err := r.querier.QueryRow(ctx, query, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository count error: %w", err)
	}
	return count, nil
}

func (r *Repository) CountPendingOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE status = 'pending' AND created_at < $1`

	var count int64
	err := r.querier.QueryRow(ctx, query, cutoff).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository count pending error: %w", err)
	}
	return count, nil
}

func (r *Repository) getItems(ctx context.Context, orderIDs []string) (map[string][]LineItemDB, error) {
	result := make(map[string][]LineItemDB, len(orderIDs))
	if len(orderIDs) == 0 {
		return result, nil
	}

	query := `SELECT order_id, meal_box_id, title, quantity, unit_price, discounted_price
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, meal_box_id`

	rows, err := r.querier.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item LineItemDB
		err := rows.Scan(
			&item.OrderID,
			&item.MealBoxID,
			&item.Title,
			&item.Quantity,
			&item.UnitPrice,
			&item.DiscountedPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
		}
		result[item.OrderID] = append(result[item.OrderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}

	return result, nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderDB OrderDB
	err := row.Scan(
		&orderDB.ID,
		&orderDB.Code,
		&orderDB.VendorID,
		&orderDB.CustomerName,
		&orderDB.CustomerEmail,
		&orderDB.CustomerMobile,
		&orderDB.DeliveryAddress,
		&orderDB.LeadTimeDays,
		&orderDB.DeliveryDate,
		&orderDB.DeliveryTime,
		&orderDB.Status,
		&orderDB.CancelReason,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderDB, nil
}
