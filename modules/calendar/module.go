package calendar

import (
	"github.com/labstack/echo/v4"

	"salon-api/core/config"
	"salon-api/core/database"
	"salon-api/modules/calendar/controller"
	"salon-api/modules/calendar/repository"
	"salon-api/modules/calendar/router"
	"salon-api/modules/calendar/service"
)

// Init wires the calendar endpoints and returns the token store and
// service so the auth and sales modules can share them.
func Init(e *echo.Echo, cfg *config.Config, db database.IDatabase) (repository.TokenStore, service.CalendarService, error) {
	store, err := repository.NewTokenStore(cfg.TokenStore, db)
	if err != nil {
		return nil, nil, err
	}

	calendarService := service.NewCalendarService(store)
	calendarController := controller.NewCalendarController(calendarService)
	router.NewCalendarRouter(calendarController).Setup(e)

	return store, calendarService, nil
}
