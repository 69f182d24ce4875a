package controller

import (
	"github.com/labstack/echo/v4"

	"salon-api/core/controller"
	"salon-api/core/errors"
	"salon-api/modules/purchases/dto"
	"salon-api/modules/purchases/service"
)

type PurchasesController struct {
	controller.BaseController
	service service.PurchasesService
}

func NewPurchasesController(service service.PurchasesService) *PurchasesController {
	return &PurchasesController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *PurchasesController) Create(ctx echo.Context) error {
	requestData := new(dto.PurchaseRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	purchase, appErr := c.service.Create(ctx.Request().Context(), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, purchase, "Purchase created")
}

func (c *PurchasesController) List(ctx echo.Context) error {
	purchases, appErr := c.service.List(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, purchases, "Purchases retrieved")
}

func (c *PurchasesController) Get(ctx echo.Context) error {
	purchase, appErr := c.service.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, purchase, "Purchase retrieved")
}

func (c *PurchasesController) Update(ctx echo.Context) error {
	requestData := new(dto.PurchaseRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	purchase, appErr := c.service.Update(ctx.Request().Context(), ctx.Param("id"), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, purchase, "Purchase updated")
}

func (c *PurchasesController) Delete(ctx echo.Context) error {
	if appErr := c.service.Delete(ctx.Request().Context(), ctx.Param("id")); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Purchase deleted")
}
