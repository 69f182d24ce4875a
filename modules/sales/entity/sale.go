package entity

import "salon-api/core/entity"

// Sale is a service appointment with its payment breakdown.
type Sale struct {
	entity.BaseEntity
	DateService   string  `db:"date_service" json:"dateService"` // "2006-01-02" or RFC3339
	Nailer        string  `db:"nailer" json:"nailer"`
	ServiceType   string  `db:"service_type" json:"serviceType"`
	Description   string  `db:"description" json:"description,omitempty"`
	Quantity      int     `db:"quantity" json:"quantity"`
	UnitPrice     float64 `db:"unit_price" json:"unitPrice"`
	PaymentMethod string  `db:"payment_method" json:"paymentMethod"`
	PercentNailer int     `db:"percent_nailer" json:"percentNailer"` // 0-100
	City          string  `db:"city" json:"city"`
	Advance       float64 `db:"advance" json:"advance"`
	Balance       float64 `db:"balance" json:"balance"`
}

// Total is the amount charged for the appointment.
func (s *Sale) Total() float64 {
	return float64(s.Quantity) * s.UnitPrice
}
