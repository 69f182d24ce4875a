package sales

import (
	"github.com/labstack/echo/v4"

	"salon-api/core/database"
	calendarService "salon-api/modules/calendar/service"
	"salon-api/modules/sales/controller"
	"salon-api/modules/sales/repository"
	"salon-api/modules/sales/router"
	"salon-api/modules/sales/service"
)

func Init(e *echo.Echo, db database.IDatabase, calendar calendarService.CalendarService) {
	repo := repository.NewSalesRepository(db)
	salesService := service.NewSalesService(repo, calendar)
	salesController := controller.NewSalesController(salesService)
	router.NewSalesRouter(salesController).Setup(e)
}
