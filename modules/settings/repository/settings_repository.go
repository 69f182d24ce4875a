package repository

import (
	"context"
	"database/sql"
	"errors"

	"salon-api/core/database"
	"salon-api/modules/settings/entity"
)

type SettingsRepository interface {
	GetPermissions(ctx context.Context) (*entity.StorePermissions, error)
	SavePermissions(ctx context.Context, perms *entity.StorePermissions) error
}

type settingsRepository struct {
	db database.IDatabase
}

func NewSettingsRepository(db database.IDatabase) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetPermissions(ctx context.Context) (*entity.StorePermissions, error) {
	var perms entity.StorePermissions
	query := `
		SELECT id, can_edit_sales, can_delete_sales, can_see_totals, can_download_report
		FROM store_settings WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &perms, query, entity.GlobalSettingsID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &perms, nil
}

func (r *settingsRepository) SavePermissions(ctx context.Context, perms *entity.StorePermissions) error {
	query := `
		INSERT INTO store_settings (id, can_edit_sales, can_delete_sales, can_see_totals, can_download_report, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE SET
			can_edit_sales = EXCLUDED.can_edit_sales,
			can_delete_sales = EXCLUDED.can_delete_sales,
			can_see_totals = EXCLUDED.can_see_totals,
			can_download_report = EXCLUDED.can_download_report,
			updated_at = NOW()
	`
	return r.db.ExecContext(ctx, query,
		entity.GlobalSettingsID,
		perms.CanEditSales, perms.CanDeleteSales, perms.CanSeeTotals, perms.CanDownloadReport,
	)
}
