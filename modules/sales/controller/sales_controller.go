package controller

import (
	"github.com/labstack/echo/v4"

	"salon-api/core/controller"
	"salon-api/core/errors"
	"salon-api/modules/sales/dto"
	"salon-api/modules/sales/service"
)

type SalesController struct {
	controller.BaseController
	service service.SalesService
}

func NewSalesController(service service.SalesService) *SalesController {
	return &SalesController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *SalesController) Create(ctx echo.Context) error {
	requestData := new(dto.SaleRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	sale, appErr := c.service.Create(ctx.Request().Context(), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, sale, "Sale created")
}

func (c *SalesController) List(ctx echo.Context) error {
	sales, appErr := c.service.List(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, sales, "Sales retrieved")
}

func (c *SalesController) Get(ctx echo.Context) error {
	sale, appErr := c.service.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, sale, "Sale retrieved")
}

func (c *SalesController) Update(ctx echo.Context) error {
	requestData := new(dto.SaleRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	sale, appErr := c.service.Update(ctx.Request().Context(), ctx.Param("id"), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, sale, "Sale updated")
}

func (c *SalesController) Delete(ctx echo.Context) error {
	if appErr := c.service.Delete(ctx.Request().Context(), ctx.Param("id")); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Sale deleted")
}

// Summary returns the aggregates behind the dashboard charts.
// GET /api/sales/summary?from=2006-01-02&to=2006-01-02
func (c *SalesController) Summary(ctx echo.Context) error {
	summary, appErr := c.service.Summary(ctx.Request().Context(), ctx.QueryParam("from"), ctx.QueryParam("to"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, summary, "Sales summary")
}
