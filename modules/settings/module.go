package settings

import (
	"github.com/labstack/echo/v4"

	"salon-api/core/cache"
	"salon-api/core/database"
	"salon-api/modules/settings/controller"
	"salon-api/modules/settings/repository"
	"salon-api/modules/settings/router"
	"salon-api/modules/settings/service"
)

func Init(e *echo.Echo, db database.IDatabase, c cache.Cache) {
	repo := repository.NewSettingsRepository(db)
	settingsService := service.NewSettingsService(repo, c)
	settingsController := controller.NewSettingsController(settingsService)
	router.NewSettingsRouter(settingsController).Setup(e)
}
