package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"salon-api/core/constants"
	"salon-api/core/errors"
	"salon-api/modules/calendar/dto"
	"salon-api/modules/calendar/service"
)

// CalendarController answers with the literal JSON shapes the front end
// expects ({connected}, {ok, event}, {error}), not the envelope the CRUD
// modules use.
type CalendarController struct {
	service service.CalendarService
}

func NewCalendarController(service service.CalendarService) *CalendarController {
	return &CalendarController{service: service}
}

// Status reports the connection state for a uid.
// GET /api/calendar/status?uid=...
func (c *CalendarController) Status(ctx echo.Context) error {
	uid := ctx.QueryParam("uid")
	if len(uid) < constants.MinUIDLength {
		return ctx.JSON(http.StatusBadRequest, dto.StatusResponse{
			Connected: false,
			Error:     "Missing or invalid uid",
		})
	}

	connected := c.service.Status(ctx.Request().Context(), uid)
	return ctx.JSON(http.StatusOK, dto.StatusResponse{Connected: connected})
}

// CreateEvent creates a calendar event for an appointment.
// POST /api/calendar/create-event
func (c *CalendarController) CreateEvent(ctx echo.Context) error {
	var req dto.CreateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
	}

	event, appErr := c.service.CreateEvent(ctx.Request().Context(), &req)
	if appErr != nil {
		switch appErr.Code {
		case errors.ErrInvalidInput, errors.ErrUnauthorized:
			// "Not connected" is a 400 by contract: the caller is expected
			// to send the user through the authorize flow again.
			return ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: appErr.Message})
		default:
			return ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: appErr.Message})
		}
	}

	return ctx.JSON(http.StatusOK, dto.CreateEventResponse{OK: true, Event: event})
}

// Disconnect deletes the stored token for a uid.
// POST /api/calendar/disconnect
func (c *CalendarController) Disconnect(ctx echo.Context) error {
	var req dto.DisconnectRequest
	if err := ctx.Bind(&req); err != nil || req.UID == "" {
		return ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing uid"})
	}

	if appErr := c.service.Disconnect(ctx.Request().Context(), req.UID); appErr != nil {
		return ctx.JSON(http.StatusInternalServerError, dto.DisconnectResponse{OK: false, Error: "Internal server error"})
	}

	return ctx.JSON(http.StatusOK, dto.DisconnectResponse{OK: true, Message: "Token deleted"})
}
