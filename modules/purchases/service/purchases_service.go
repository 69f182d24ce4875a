package service

import (
	"context"
	"time"

	"salon-api/core/errors"
	"salon-api/core/logger"
	"salon-api/core/utils"
	"salon-api/modules/purchases/dto"
	"salon-api/modules/purchases/entity"
	"salon-api/modules/purchases/repository"
)

type PurchasesService interface {
	Create(ctx context.Context, req *dto.PurchaseRequest) (*entity.Purchase, *errors.AppError)
	GetByID(ctx context.Context, id string) (*entity.Purchase, *errors.AppError)
	List(ctx context.Context) ([]entity.Purchase, *errors.AppError)
	Update(ctx context.Context, id string, req *dto.PurchaseRequest) (*entity.Purchase, *errors.AppError)
	Delete(ctx context.Context, id string) *errors.AppError
}

type purchasesService struct {
	repo repository.PurchasesRepository
}

func NewPurchasesService(repo repository.PurchasesRepository) PurchasesService {
	return &purchasesService{repo: repo}
}

func (s *purchasesService) Create(ctx context.Context, req *dto.PurchaseRequest) (*entity.Purchase, *errors.AppError) {
	if appErr := validatePurchaseRequest(req); appErr != nil {
		return nil, appErr
	}

	purchase := purchaseFromRequest(req)
	purchase.ID = utils.GenerateID()
	purchase.CreatedAt = time.Now()
	purchase.UpdatedAt = purchase.CreatedAt

	if err := s.repo.Create(ctx, purchase); err != nil {
		logger.Error("PurchasesService:Create:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save purchase", err)
	}
	return purchase, nil
}

func (s *purchasesService) GetByID(ctx context.Context, id string) (*entity.Purchase, *errors.AppError) {
	purchase, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get purchase", err)
	}
	if purchase == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Purchase not found", nil)
	}
	return purchase, nil
}

func (s *purchasesService) List(ctx context.Context) ([]entity.Purchase, *errors.AppError) {
	purchases, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list purchases", err)
	}
	return purchases, nil
}

func (s *purchasesService) Update(ctx context.Context, id string, req *dto.PurchaseRequest) (*entity.Purchase, *errors.AppError) {
	if appErr := validatePurchaseRequest(req); appErr != nil {
		return nil, appErr
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get purchase", err)
	}
	if existing == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Purchase not found", nil)
	}

	purchase := purchaseFromRequest(req)
	purchase.BaseEntity = existing.BaseEntity

	if err := s.repo.Update(ctx, purchase); err != nil {
		logger.Error("PurchasesService:Update:Error", "error", err, "purchase_id", id)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update purchase", err)
	}
	return purchase, nil
}

func (s *purchasesService) Delete(ctx context.Context, id string) *errors.AppError {
	if err := s.repo.Delete(ctx, id); err != nil {
		logger.Error("PurchasesService:Delete:Error", "error", err, "purchase_id", id)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete purchase", err)
	}
	return nil
}

func purchaseFromRequest(req *dto.PurchaseRequest) *entity.Purchase {
	return &entity.Purchase{
		Date:          req.Date,
		Supplier:      req.Supplier,
		Item:          req.Item,
		Quantity:      req.Quantity,
		UnitCost:      req.UnitCost,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}
}

func validatePurchaseRequest(req *dto.PurchaseRequest) *errors.AppError {
	if req.Date == "" || req.Item == "" {
		return errors.NewAppError(errors.ErrInvalidInput, "date and item are required", nil)
	}
	if req.Quantity <= 0 {
		return errors.NewAppError(errors.ErrInvalidInput, "quantity must be positive", nil)
	}
	if req.UnitCost < 0 {
		return errors.NewAppError(errors.ErrInvalidInput, "unitCost cannot be negative", nil)
	}
	return nil
}
