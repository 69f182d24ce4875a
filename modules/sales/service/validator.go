package service

import (
	"salon-api/core/controller"
	"salon-api/modules/sales/dto"
)

func validateSaleRequest(req *dto.SaleRequest) *controller.ValidationResult {
	result := &controller.ValidationResult{}

	if req.DateService == "" {
		result.Add("dateService", "dateService is required")
	}
	if req.Nailer == "" {
		result.Add("nailer", "nailer is required")
	}
	if req.ServiceType == "" {
		result.Add("serviceType", "serviceType is required")
	}
	if req.Quantity <= 0 {
		result.Add("quantity", "quantity must be positive")
	}
	if req.UnitPrice < 0 {
		result.Add("unitPrice", "unitPrice cannot be negative")
	}
	if req.PercentNailer < 0 || req.PercentNailer > 100 {
		result.Add("percentNailer", "percentNailer must be between 0 and 100")
	}

	return result
}
