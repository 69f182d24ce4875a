package entity

import "salon-api/core/entity"

// Purchase is a supply expense record.
type Purchase struct {
	entity.BaseEntity
	Date          string  `db:"date" json:"date"` // "2006-01-02"
	Supplier      string  `db:"supplier" json:"supplier,omitempty"`
	Item          string  `db:"item" json:"item"`
	Quantity      int     `db:"quantity" json:"quantity"`
	UnitCost      float64 `db:"unit_cost" json:"unitCost"`
	PaymentMethod string  `db:"payment_method" json:"paymentMethod,omitempty"`
	Notes         string  `db:"notes" json:"notes,omitempty"`
}
