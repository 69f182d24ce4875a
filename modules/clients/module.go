package clients

import (
	"github.com/labstack/echo/v4"

	"salon-api/core/database"
	"salon-api/modules/clients/controller"
	"salon-api/modules/clients/repository"
	"salon-api/modules/clients/router"
	"salon-api/modules/clients/service"
)

func Init(e *echo.Echo, db database.IDatabase) {
	repo := repository.NewClientsRepository(db)
	clientsService := service.NewClientsService(repo)
	clientsController := controller.NewClientsController(clientsService)
	router.NewClientsRouter(clientsController).Setup(e)
}
