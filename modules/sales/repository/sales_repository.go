package repository

import (
	"context"
	"database/sql"
	"errors"

	"salon-api/core/database"
	"salon-api/modules/sales/entity"
)

type SalesRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context) ([]entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id string) error
	ListBetween(ctx context.Context, from, to string) ([]entity.Sale, error)
}

type salesRepository struct {
	db database.IDatabase
}

func NewSalesRepository(db database.IDatabase) SalesRepository {
	return &salesRepository{db: db}
}

func (r *salesRepository) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, date_service, nailer, service_type, description, quantity, unit_price,
			payment_method, percent_nailer, city, advance, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	`
	return r.db.ExecContext(ctx, query,
		sale.ID, sale.DateService, sale.Nailer, sale.ServiceType, sale.Description,
		sale.Quantity, sale.UnitPrice, sale.PaymentMethod, sale.PercentNailer,
		sale.City, sale.Advance, sale.Balance,
	)
}

func (r *salesRepository) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	var sale entity.Sale
	query := `SELECT * FROM sales WHERE id = $1`
	if err := r.db.GetContext(ctx, &sale, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &sale, nil
}

func (r *salesRepository) List(ctx context.Context) ([]entity.Sale, error) {
	var sales []entity.Sale
	query := `SELECT * FROM sales ORDER BY date_service DESC`
	if err := r.db.SelectContext(ctx, &sales, query); err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *salesRepository) Update(ctx context.Context, sale *entity.Sale) error {
	query := `
		UPDATE sales
		SET date_service = $1, nailer = $2, service_type = $3, description = $4, quantity = $5,
			unit_price = $6, payment_method = $7, percent_nailer = $8, city = $9,
			advance = $10, balance = $11, updated_at = NOW()
		WHERE id = $12
	`
	return r.db.ExecContext(ctx, query,
		sale.DateService, sale.Nailer, sale.ServiceType, sale.Description, sale.Quantity,
		sale.UnitPrice, sale.PaymentMethod, sale.PercentNailer, sale.City,
		sale.Advance, sale.Balance, sale.ID,
	)
}

func (r *salesRepository) Delete(ctx context.Context, id string) error {
	return r.db.ExecContext(ctx, `DELETE FROM sales WHERE id = $1`, id)
}

// ListBetween filters on the date_service prefix (both layouts sort
// lexicographically by day).
func (r *salesRepository) ListBetween(ctx context.Context, from, to string) ([]entity.Sale, error) {
	var sales []entity.Sale
	query := `
		SELECT * FROM sales
		WHERE ($1 = '' OR left(date_service, 10) >= $1)
		AND ($2 = '' OR left(date_service, 10) <= $2)
		ORDER BY date_service DESC
	`
	if err := r.db.SelectContext(ctx, &sales, query, from, to); err != nil {
		return nil, err
	}
	return sales, nil
}
