package router

import (
	"github.com/labstack/echo/v4"

	"salon-api/modules/settings/controller"
)

type SettingsRouter struct {
	controller *controller.SettingsController
}

func NewSettingsRouter(controller *controller.SettingsController) *SettingsRouter {
	return &SettingsRouter{controller: controller}
}

func (r *SettingsRouter) Setup(e *echo.Echo) {
	g := e.Group("/api/settings")
	g.GET("/permissions", r.controller.GetPermissions)
	g.PUT("/permissions", r.controller.UpdatePermissions)
}
