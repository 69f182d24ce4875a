package entity

// StorePermissions is the single global permissions row. The zero row is
// created on first read with can_edit_sales enabled and everything else off.
type StorePermissions struct {
	ID                string `db:"id" json:"-"`
	CanEditSales      bool   `db:"can_edit_sales" json:"canEditSales"`
	CanDeleteSales    bool   `db:"can_delete_sales" json:"canDeleteSales"`
	CanSeeTotals      bool   `db:"can_see_totals" json:"canSeeTotals"`
	CanDownloadReport bool   `db:"can_download_report" json:"canDownloadReport"`
}

const GlobalSettingsID = "global"

func DefaultPermissions() *StorePermissions {
	return &StorePermissions{
		ID:           GlobalSettingsID,
		CanEditSales: true,
	}
}
