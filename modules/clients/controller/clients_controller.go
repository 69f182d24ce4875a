package controller

import (
	"github.com/labstack/echo/v4"

	"salon-api/core/controller"
	"salon-api/core/errors"
	"salon-api/modules/clients/dto"
	"salon-api/modules/clients/service"
)

type ClientsController struct {
	controller.BaseController
	service service.ClientsService
}

func NewClientsController(service service.ClientsService) *ClientsController {
	return &ClientsController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *ClientsController) Create(ctx echo.Context) error {
	requestData := new(dto.ClientRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	client, appErr := c.service.Create(ctx.Request().Context(), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, client, "Client created")
}

func (c *ClientsController) List(ctx echo.Context) error {
	clients, appErr := c.service.List(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, clients, "Clients retrieved")
}

func (c *ClientsController) Get(ctx echo.Context) error {
	client, appErr := c.service.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, client, "Client retrieved")
}

func (c *ClientsController) Update(ctx echo.Context) error {
	requestData := new(dto.ClientRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	client, appErr := c.service.Update(ctx.Request().Context(), ctx.Param("id"), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, client, "Client updated")
}

func (c *ClientsController) Delete(ctx echo.Context) error {
	if appErr := c.service.Delete(ctx.Request().Context(), ctx.Param("id")); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Client deleted")
}
