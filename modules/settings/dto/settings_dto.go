package dto

// UpdatePermissionsRequest carries a partial update. Fields left null keep
// their stored value.
type UpdatePermissionsRequest struct {
	CanEditSales      *bool `json:"canEditSales"`
	CanDeleteSales    *bool `json:"canDeleteSales"`
	CanSeeTotals      *bool `json:"canSeeTotals"`
	CanDownloadReport *bool `json:"canDownloadReport"`
}
