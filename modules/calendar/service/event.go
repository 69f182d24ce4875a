package service

import (
	"time"

	"google.golang.org/api/calendar/v3"

	"salon-api/core/errors"
	"salon-api/modules/calendar/dto"
)

const (
	allDayDateLayout = "2006-01-02"
	// Accepted for timed events coming straight from a datetime-local
	// input, interpreted as UTC.
	localDateTimeLayout = "2006-01-02T15:04"

	// Appointments carry no duration field; timed events default to one hour.
	defaultEventDuration = 60 * time.Minute
)

// buildEvent translates an appointment into a Calendar API event body.
//
// All-day events span exactly one day: Google treats the end date as
// exclusive, so the end is the start date plus one day, computed in UTC so
// the host timezone can never roll the date backwards.
func buildEvent(req *dto.CreateEventRequest) (*calendar.Event, *errors.AppError) {
	event := &calendar.Event{
		Summary:     req.Title,
		Description: req.Description,
	}

	if req.AllDay {
		start, err := time.ParseInLocation(allDayDateLayout, req.DateService, time.UTC)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid dateService for all-day event", err)
		}
		end := start.AddDate(0, 0, 1)
		event.Start = &calendar.EventDateTime{Date: start.Format(allDayDateLayout)}
		event.End = &calendar.EventDateTime{Date: end.Format(allDayDateLayout)}
		return event, nil
	}

	start, err := time.Parse(time.RFC3339, req.DateService)
	if err != nil {
		start, err = time.ParseInLocation(localDateTimeLayout, req.DateService, time.UTC)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid dateService for timed event", err)
		}
	}
	end := start.Add(defaultEventDuration)
	event.Start = &calendar.EventDateTime{DateTime: start.Format(time.RFC3339)}
	event.End = &calendar.EventDateTime{DateTime: end.Format(time.RFC3339)}
	return event, nil
}
