package service

import (
	"context"
	"time"

	"salon-api/core/constants"
	"salon-api/core/errors"
	"salon-api/core/logger"
	"salon-api/core/utils"
	calendarService "salon-api/modules/calendar/service"
	"salon-api/modules/sales/dto"
	"salon-api/modules/sales/entity"
	"salon-api/modules/sales/repository"
)

type SalesService interface {
	Create(ctx context.Context, req *dto.SaleRequest) (*entity.Sale, *errors.AppError)
	GetByID(ctx context.Context, id string) (*entity.Sale, *errors.AppError)
	List(ctx context.Context) ([]entity.Sale, *errors.AppError)
	Update(ctx context.Context, id string, req *dto.SaleRequest) (*entity.Sale, *errors.AppError)
	Delete(ctx context.Context, id string) *errors.AppError
	Summary(ctx context.Context, from, to string) (*dto.SummaryResponse, *errors.AppError)
}

type salesService struct {
	repo     repository.SalesRepository
	calendar calendarService.CalendarService
}

func NewSalesService(repo repository.SalesRepository, calendar calendarService.CalendarService) SalesService {
	return &salesService{repo: repo, calendar: calendar}
}

func (s *salesService) Create(ctx context.Context, req *dto.SaleRequest) (*entity.Sale, *errors.AppError) {
	if v := validateSaleRequest(req); v.HasError() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid sale data", nil)
	}

	sale := saleFromRequest(req)
	sale.ID = utils.GenerateID()
	sale.CreatedAt = time.Now()
	sale.UpdatedAt = sale.CreatedAt

	if err := s.repo.Create(ctx, sale); err != nil {
		logger.Error("SalesService:Create:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save sale", err)
	}

	// Calendar sync is best effort: the sale is already persisted, so a
	// calendar failure is logged and never surfaced to the caller.
	if req.UID != "" && s.calendar != nil {
		eventReq := buildCalendarEventRequest(sale, req.UID, req.ClientName)
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), constants.GoogleAPITimeout)
			defer cancel()
			if _, appErr := s.calendar.CreateEvent(bgCtx, eventReq); appErr != nil {
				logger.Error("SalesService:Create:CalendarEvent:Error",
					"error", appErr, "sale_id", eventReq.SaleID, "uid", eventReq.UID)
			}
		}()
	}

	return sale, nil
}

func (s *salesService) GetByID(ctx context.Context, id string) (*entity.Sale, *errors.AppError) {
	sale, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get sale", err)
	}
	if sale == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Sale not found", nil)
	}
	return sale, nil
}

func (s *salesService) List(ctx context.Context) ([]entity.Sale, *errors.AppError) {
	sales, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list sales", err)
	}
	return sales, nil
}

func (s *salesService) Update(ctx context.Context, id string, req *dto.SaleRequest) (*entity.Sale, *errors.AppError) {
	if v := validateSaleRequest(req); v.HasError() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid sale data", nil)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get sale", err)
	}
	if existing == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Sale not found", nil)
	}

	sale := saleFromRequest(req)
	sale.BaseEntity = existing.BaseEntity

	if err := s.repo.Update(ctx, sale); err != nil {
		logger.Error("SalesService:Update:Error", "error", err, "sale_id", id)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update sale", err)
	}
	return sale, nil
}

func (s *salesService) Delete(ctx context.Context, id string) *errors.AppError {
	if err := s.repo.Delete(ctx, id); err != nil {
		logger.Error("SalesService:Delete:Error", "error", err, "sale_id", id)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete sale", err)
	}
	return nil
}

func (s *salesService) Summary(ctx context.Context, from, to string) (*dto.SummaryResponse, *errors.AppError) {
	sales, err := s.repo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load sales", err)
	}
	return summarize(sales, from, to), nil
}

func saleFromRequest(req *dto.SaleRequest) *entity.Sale {
	return &entity.Sale{
		DateService:   req.DateService,
		Nailer:        req.Nailer,
		ServiceType:   req.ServiceType,
		Description:   req.Description,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		PaymentMethod: req.PaymentMethod,
		PercentNailer: req.PercentNailer,
		City:          req.City,
		Advance:       req.Advance,
		Balance:       req.Balance,
	}
}

func summarize(sales []entity.Sale, from, to string) *dto.SummaryResponse {
	summary := &dto.SummaryResponse{
		From:            from,
		To:              to,
		ByPaymentMethod: map[string]float64{},
		ByNailer:        map[string]float64{},
	}
	for i := range sales {
		sale := &sales[i]
		total := sale.Total()
		summary.TotalRevenue += total
		summary.TotalSales++
		summary.TotalAdvance += sale.Advance
		summary.TotalBalance += sale.Balance
		if sale.PaymentMethod != "" {
			summary.ByPaymentMethod[sale.PaymentMethod] += total
		}
		if sale.Nailer != "" {
			summary.ByNailer[sale.Nailer] += total
		}
	}
	return summary
}
