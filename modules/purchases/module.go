package purchases

import (
	"github.com/labstack/echo/v4"

	"salon-api/core/database"
	"salon-api/modules/purchases/controller"
	"salon-api/modules/purchases/repository"
	"salon-api/modules/purchases/router"
	"salon-api/modules/purchases/service"
)

func Init(e *echo.Echo, db database.IDatabase) {
	repo := repository.NewPurchasesRepository(db)
	purchasesService := service.NewPurchasesService(repo)
	purchasesController := controller.NewPurchasesController(purchasesService)
	router.NewPurchasesRouter(purchasesController).Setup(e)
}
