package service

import (
	"context"
	"regexp"
	"time"

	"salon-api/core/errors"
	"salon-api/core/logger"
	"salon-api/core/utils"
	"salon-api/modules/clients/dto"
	"salon-api/modules/clients/entity"
	"salon-api/modules/clients/repository"
)

// Peruvian DNI: exactly eight digits.
var dniPattern = regexp.MustCompile(`^\d{8}$`)

type ClientsService interface {
	Create(ctx context.Context, req *dto.ClientRequest) (*entity.Client, *errors.AppError)
	GetByID(ctx context.Context, id string) (*entity.Client, *errors.AppError)
	List(ctx context.Context) ([]entity.Client, *errors.AppError)
	Update(ctx context.Context, id string, req *dto.ClientRequest) (*entity.Client, *errors.AppError)
	Delete(ctx context.Context, id string) *errors.AppError
}

type clientsService struct {
	repo repository.ClientsRepository
}

func NewClientsService(repo repository.ClientsRepository) ClientsService {
	return &clientsService{repo: repo}
}

func (s *clientsService) Create(ctx context.Context, req *dto.ClientRequest) (*entity.Client, *errors.AppError) {
	if appErr := validateClientRequest(req); appErr != nil {
		return nil, appErr
	}

	existing, err := s.repo.GetByDNI(ctx, req.DNI)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check existing client", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "A client with this DNI already exists", nil)
	}

	client := &entity.Client{
		DNI:       req.DNI,
		Phone:     req.Phone,
		Nombres:   req.Nombres,
		Apellidos: req.Apellidos,
	}
	client.ID = utils.GenerateID()
	client.CreatedAt = time.Now()
	client.UpdatedAt = client.CreatedAt

	if err := s.repo.Create(ctx, client); err != nil {
		logger.Error("ClientsService:Create:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save client", err)
	}
	return client, nil
}

func (s *clientsService) GetByID(ctx context.Context, id string) (*entity.Client, *errors.AppError) {
	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get client", err)
	}
	if client == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Client not found", nil)
	}
	return client, nil
}

func (s *clientsService) List(ctx context.Context) ([]entity.Client, *errors.AppError) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list clients", err)
	}
	return clients, nil
}

func (s *clientsService) Update(ctx context.Context, id string, req *dto.ClientRequest) (*entity.Client, *errors.AppError) {
	if appErr := validateClientRequest(req); appErr != nil {
		return nil, appErr
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get client", err)
	}
	if existing == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Client not found", nil)
	}

	existing.DNI = req.DNI
	existing.Phone = req.Phone
	existing.Nombres = req.Nombres
	existing.Apellidos = req.Apellidos

	if err := s.repo.Update(ctx, existing); err != nil {
		logger.Error("ClientsService:Update:Error", "error", err, "client_id", id)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update client", err)
	}
	return existing, nil
}

func (s *clientsService) Delete(ctx context.Context, id string) *errors.AppError {
	if err := s.repo.Delete(ctx, id); err != nil {
		logger.Error("ClientsService:Delete:Error", "error", err, "client_id", id)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete client", err)
	}
	return nil
}

func validateClientRequest(req *dto.ClientRequest) *errors.AppError {
	if !dniPattern.MatchString(req.DNI) {
		return errors.NewAppError(errors.ErrInvalidInput, "DNI must be exactly 8 digits", nil)
	}
	if req.Nombres == "" || req.Apellidos == "" {
		return errors.NewAppError(errors.ErrInvalidInput, "nombres and apellidos are required", nil)
	}
	return nil
}
