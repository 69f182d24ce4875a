package repository

import (
	"context"
	"database/sql"
	"errors"

	"salon-api/core/database"
	"salon-api/modules/purchases/entity"
)

type PurchasesRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	GetByID(ctx context.Context, id string) (*entity.Purchase, error)
	List(ctx context.Context) ([]entity.Purchase, error)
	Update(ctx context.Context, purchase *entity.Purchase) error
	Delete(ctx context.Context, id string) error
}

type purchasesRepository struct {
	db database.IDatabase
}

func NewPurchasesRepository(db database.IDatabase) PurchasesRepository {
	return &purchasesRepository{db: db}
}

func (r *purchasesRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, date, supplier, item, quantity, unit_cost, payment_method, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	return r.db.ExecContext(ctx, query,
		purchase.ID, purchase.Date, purchase.Supplier, purchase.Item,
		purchase.Quantity, purchase.UnitCost, purchase.PaymentMethod, purchase.Notes,
	)
}

func (r *purchasesRepository) GetByID(ctx context.Context, id string) (*entity.Purchase, error) {
	var purchase entity.Purchase
	if err := r.db.GetContext(ctx, &purchase, `SELECT * FROM purchases WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &purchase, nil
}

func (r *purchasesRepository) List(ctx context.Context) ([]entity.Purchase, error) {
	var purchases []entity.Purchase
	if err := r.db.SelectContext(ctx, &purchases, `SELECT * FROM purchases ORDER BY date DESC`); err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *purchasesRepository) Update(ctx context.Context, purchase *entity.Purchase) error {
	query := `
		UPDATE purchases
		SET date = $1, supplier = $2, item = $3, quantity = $4, unit_cost = $5,
			payment_method = $6, notes = $7, updated_at = NOW()
		WHERE id = $8
	`
	return r.db.ExecContext(ctx, query,
		purchase.Date, purchase.Supplier, purchase.Item, purchase.Quantity,
		purchase.UnitCost, purchase.PaymentMethod, purchase.Notes, purchase.ID,
	)
}

func (r *purchasesRepository) Delete(ctx context.Context, id string) error {
	return r.db.ExecContext(ctx, `DELETE FROM purchases WHERE id = $1`, id)
}
