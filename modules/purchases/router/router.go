package router

import (
	"github.com/labstack/echo/v4"

	"salon-api/modules/purchases/controller"
)

type PurchasesRouter struct {
	controller *controller.PurchasesController
}

func NewPurchasesRouter(controller *controller.PurchasesController) *PurchasesRouter {
	return &PurchasesRouter{controller: controller}
}

func (r *PurchasesRouter) Setup(e *echo.Echo) {
	g := e.Group("/api/purchases")
	g.POST("", r.controller.Create)
	g.GET("", r.controller.List)
	g.GET("/:id", r.controller.Get)
	g.PUT("/:id", r.controller.Update)
	g.DELETE("/:id", r.controller.Delete)
}
