package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"

	"salon-api/core/constants"
	"salon-api/core/errors"
	"salon-api/core/logger"
	"salon-api/modules/calendar/dto"
	"salon-api/modules/calendar/repository"
)

const primaryCalendarID = "primary"

type CalendarService interface {
	// Status reports whether uid has a stored record with a non-empty
	// refresh token. Store failures degrade to "not connected".
	Status(ctx context.Context, uid string) bool
	// CreateEvent inserts a single event on the user's primary calendar.
	// It is attempted exactly once; callers in the sale-save flow treat a
	// failure as non-fatal.
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*calendar.Event, *errors.AppError)
	// Disconnect removes the stored token. Idempotent.
	Disconnect(ctx context.Context, uid string) *errors.AppError
}

type calendarService struct {
	store     repository.TokenStore
	newClient ClientFactory
}

func NewCalendarService(store repository.TokenStore) CalendarService {
	return &calendarService{
		store:     store,
		newClient: NewGoogleCalendarClient,
	}
}

// NewCalendarServiceWithFactory lets tests substitute the Google client
// factory.
func NewCalendarServiceWithFactory(store repository.TokenStore, factory ClientFactory) CalendarService {
	return &calendarService{store: store, newClient: factory}
}

func (s *calendarService) Status(ctx context.Context, uid string) bool {
	record, _ := s.store.Get(ctx, uid)
	return record.Connected()
}

func (s *calendarService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*calendar.Event, *errors.AppError) {
	if req.DateService == "" || req.Title == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Missing event data", nil)
	}

	uid := req.UID
	if uid == "" {
		uid = constants.AnonymousUID
	}

	record, _ := s.store.Get(ctx, uid)
	if !record.Connected() {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "No refresh token. Authorize first.", nil)
	}

	event, appErr := buildEvent(req)
	if appErr != nil {
		return nil, appErr
	}

	client, err := s.newClient(ctx, record.RefreshToken)
	if err != nil {
		logger.Error("CalendarService:CreateEvent:ClientFactory:Error", "error", err, "uid", uid)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to authorize with Google Calendar", err)
	}

	created, err := client.Events.Insert(primaryCalendarID, event).Context(ctx).Do()
	if err != nil {
		var gerr *googleapi.Error
		if stderrors.As(err, &gerr) {
			// Keep the provider's structured detail for diagnosis.
			logger.Error("CalendarService:CreateEvent:GoogleAPI:Error",
				"status", gerr.Code, "message", gerr.Message, "uid", uid, "sale_id", req.SaleID)
			return nil, errors.NewAppError(errors.ErrInternalServer,
				fmt.Sprintf("Google Calendar API error: %d %s", gerr.Code, gerr.Message), err)
		}
		logger.Error("CalendarService:CreateEvent:Insert:Error", "error", err, "uid", uid, "sale_id", req.SaleID)
		return nil, errors.NewAppError(errors.ErrInternalServer, "create-event failed", err)
	}

	logger.Info("CalendarService:CreateEvent:Success", "uid", uid, "event_id", created.Id, "sale_id", req.SaleID)
	return created, nil
}

func (s *calendarService) Disconnect(ctx context.Context, uid string) *errors.AppError {
	if err := s.store.Delete(ctx, uid); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Internal server error", err)
	}
	return nil
}
