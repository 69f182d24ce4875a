package router

import (
	"github.com/labstack/echo/v4"

	"salon-api/modules/auth/controller"
)

type AuthRouter struct {
	controller *controller.AuthController
}

func NewAuthRouter(controller *controller.AuthController) *AuthRouter {
	return &AuthRouter{controller: controller}
}

func (r *AuthRouter) Setup(e *echo.Echo) {
	g := e.Group("/api/auth")
	g.GET("/google", r.controller.GoogleAuth)
	g.GET("/callback", r.controller.GoogleCallback)
}
