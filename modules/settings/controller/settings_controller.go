package controller

import (
	"github.com/labstack/echo/v4"

	"salon-api/core/controller"
	"salon-api/core/errors"
	"salon-api/modules/settings/dto"
	"salon-api/modules/settings/service"
)

type SettingsController struct {
	controller.BaseController
	service service.SettingsService
}

func NewSettingsController(service service.SettingsService) *SettingsController {
	return &SettingsController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *SettingsController) GetPermissions(ctx echo.Context) error {
	perms, appErr := c.service.GetPermissions(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, perms, "Permissions retrieved")
}

func (c *SettingsController) UpdatePermissions(ctx echo.Context) error {
	requestData := new(dto.UpdatePermissionsRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	perms, appErr := c.service.UpdatePermissions(ctx.Request().Context(), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, perms, "Permissions updated")
}
