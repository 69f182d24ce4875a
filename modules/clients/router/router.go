package router

import (
	"github.com/labstack/echo/v4"

	"salon-api/modules/clients/controller"
)

type ClientsRouter struct {
	controller *controller.ClientsController
}

func NewClientsRouter(controller *controller.ClientsController) *ClientsRouter {
	return &ClientsRouter{controller: controller}
}

func (r *ClientsRouter) Setup(e *echo.Echo) {
	g := e.Group("/api/clients")
	g.POST("", r.controller.Create)
	g.GET("", r.controller.List)
	g.GET("/:id", r.controller.Get)
	g.PUT("/:id", r.controller.Update)
	g.DELETE("/:id", r.controller.Delete)
}
