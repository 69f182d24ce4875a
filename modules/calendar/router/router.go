package router

import (
	"github.com/labstack/echo/v4"

	"salon-api/modules/calendar/controller"
)

type CalendarRouter struct {
	controller *controller.CalendarController
}

func NewCalendarRouter(controller *controller.CalendarController) *CalendarRouter {
	return &CalendarRouter{controller: controller}
}

func (r *CalendarRouter) Setup(e *echo.Echo) {
	g := e.Group("/api/calendar")
	g.GET("/status", r.controller.Status)
	g.POST("/create-event", r.controller.CreateEvent)
	g.POST("/disconnect", r.controller.Disconnect)
}
