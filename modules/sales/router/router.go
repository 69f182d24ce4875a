package router

import (
	"github.com/labstack/echo/v4"

	"salon-api/modules/sales/controller"
)

type SalesRouter struct {
	controller *controller.SalesController
}

func NewSalesRouter(controller *controller.SalesController) *SalesRouter {
	return &SalesRouter{controller: controller}
}

func (r *SalesRouter) Setup(e *echo.Echo) {
	g := e.Group("/api/sales")
	g.POST("", r.controller.Create)
	g.GET("", r.controller.List)
	g.GET("/summary", r.controller.Summary)
	g.GET("/:id", r.controller.Get)
	g.PUT("/:id", r.controller.Update)
	g.DELETE("/:id", r.controller.Delete)
}
