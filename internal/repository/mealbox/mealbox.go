package mealbox

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/service/catalog"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const mealBoxColumns = `id, vendor_id, title, description, price, discount_percent, discount_active,
		min_qty, min_lead_time_days, max_lead_time_days, sample_available, packaging_details,
		created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, mealBoxEntity entities.MealBox) (*entities.MealBox, error) {
	query := `INSERT INTO meal_boxes (id, vendor_id, title, description, price, discount_percent,
			discount_active, min_qty, min_lead_time_days, max_lead_time_days, sample_available, packaging_details)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + mealBoxColumns

	mealBoxDB, err := scanMealBox(r.querier.QueryRow(
		ctx,
		query,
		mealBoxEntity.ID,
		mealBoxEntity.VendorID,
		mealBoxEntity.Title,
		mealBoxEntity.Description,
		mealBoxEntity.Price,
		mealBoxEntity.DiscountPercent,
		mealBoxEntity.DiscountActive,
		mealBoxEntity.MinQty,
		mealBoxEntity.MinLeadTimeDays,
		mealBoxEntity.MaxLeadTimeDays,
		mealBoxEntity.SampleAvailable,
		mealBoxEntity.PackagingDetails,
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected mealbox repository create error: %w", err)
	}

	return ToDomain(mealBoxDB), nil
}

func (r *Repository) GetByID(ctx context.Context, mealBoxID string) (*entities.MealBox, error) {
	query := `SELECT ` + mealBoxColumns + `
		FROM meal_boxes
		WHERE id = $1`

	mealBoxDB, err := scanMealBox(r.querier.QueryRow(ctx, query, mealBoxID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrMealBoxNotFound
		}
		return nil, fmt.Errorf("unexpected mealbox repository getbyid error: %w", err)
	}

	return ToDomain(mealBoxDB), nil
}

func (r *Repository) List(ctx context.Context, vendorID string) ([]entities.MealBox, error) {
	builder := qb.
		Select("id", "vendor_id", "title", "description", "price", "discount_percent", "discount_active",
			"min_qty", "min_lead_time_days", "max_lead_time_days", "sample_available", "packaging_details",
			"created_at", "updated_at").
		From("meal_boxes").
		OrderBy("created_at DESC")

	if vendorID != "" {
		builder = builder.Where(sq.Eq{"vendor_id": vendorID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected mealbox repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected mealbox repository list error: %w", err)
	}
	defer rows.Close()

	mealBoxesDB := make([]MealBoxDB, 0, 8)
	for rows.Next() {
		var mealBoxDB MealBoxDB
		err := rows.Scan(
			&mealBoxDB.ID,
			&mealBoxDB.VendorID,
			&mealBoxDB.Title,
			&mealBoxDB.Description,
			&mealBoxDB.Price,
			&mealBoxDB.DiscountPercent,
			&mealBoxDB.DiscountActive,
			&mealBoxDB.MinQty,
			&mealBoxDB.MinLeadTimeDays,
			&mealBoxDB.MaxLeadTimeDays,
			&mealBoxDB.SampleAvailable,
			&mealBoxDB.PackagingDetails,
			&mealBoxDB.CreatedAt,
			&mealBoxDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected mealbox repository list error: %w", err)
		}
		mealBoxesDB = append(mealBoxesDB, mealBoxDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected mealbox repository list error: %w", err)
	}

	return ToDomainList(mealBoxesDB), nil
}

func scanMealBox(row pgx.Row) (*MealBoxDB, error) {
	var mealBoxDB MealBoxDB
	err := row.Scan(
		&mealBoxDB.ID,
		&mealBoxDB.VendorID,
		&mealBoxDB.Title,
		&mealBoxDB.Description,
		&mealBoxDB.Price,
		&mealBoxDB.DiscountPercent,
		&mealBoxDB.DiscountActive,
		&mealBoxDB.MinQty,
		&mealBoxDB.MinLeadTimeDays,
		&mealBoxDB.MaxLeadTimeDays,
		&mealBoxDB.SampleAvailable,
		&mealBoxDB.PackagingDetails,
		&mealBoxDB.CreatedAt,
		&mealBoxDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &mealBoxDB, nil
}
