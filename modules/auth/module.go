package auth

import (
	"github.com/labstack/echo/v4"

	"salon-api/modules/auth/controller"
	"salon-api/modules/auth/router"
	"salon-api/modules/auth/service"
	calendarRepo "salon-api/modules/calendar/repository"
)

// Init wires the OAuth redirect flow. The token store is shared with the
// calendar module so both sides see the same records.
func Init(e *echo.Echo, store calendarRepo.TokenStore) {
	authService := service.NewAuthService(store)
	authController := controller.NewAuthController(authService)
	router.NewAuthRouter(authController).Setup(e)
}
