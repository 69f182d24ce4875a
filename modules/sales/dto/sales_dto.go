package dto

// SaleRequest is the payload for create and update.
type SaleRequest struct {
	// UID of the salon account; when present and connected, saving a sale
	// also schedules a calendar event (best effort).
	UID           string  `json:"uid,omitempty"`
	ClientName    string  `json:"clientName,omitempty"`
	DateService   string  `json:"dateService"`
	Nailer        string  `json:"nailer"`
	ServiceType   string  `json:"serviceType"`
	Description   string  `json:"description,omitempty"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice"`
	PaymentMethod string  `json:"paymentMethod"`
	PercentNailer int     `json:"percentNailer"`
	City          string  `json:"city"`
	Advance       float64 `json:"advance"`
	Balance       float64 `json:"balance"`
}

// SummaryResponse backs the dashboard chart indicators.
type SummaryResponse struct {
	From            string             `json:"from,omitempty"`
	To              string             `json:"to,omitempty"`
	TotalRevenue    float64            `json:"totalRevenue"`
	TotalSales      int                `json:"totalSales"`
	TotalAdvance    float64            `json:"totalAdvance"`
	TotalBalance    float64            `json:"totalBalance"`
	ByPaymentMethod map[string]float64 `json:"byPaymentMethod"`
	ByNailer        map[string]float64 `json:"byNailer"`
}
