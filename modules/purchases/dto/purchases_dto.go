package dto

type PurchaseRequest struct {
	Date          string  `json:"date"`
	Supplier      string  `json:"supplier,omitempty"`
	Item          string  `json:"item"`
	Quantity      int     `json:"quantity"`
	UnitCost      float64 `json:"unitCost"`
	PaymentMethod string  `json:"paymentMethod,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}
