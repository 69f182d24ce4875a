package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"salon-api/modules/auth/dto"
	"salon-api/modules/auth/service"
)

type AuthController struct {
	service service.AuthService
}

func NewAuthController(service service.AuthService) *AuthController {
	return &AuthController{service: service}
}

// GoogleAuth sends the browser to Google's consent page.
// GET /api/auth/google?uid=...
func (c *AuthController) GoogleAuth(ctx echo.Context) error {
	uid := ctx.QueryParam("uid")

	authURL, appErr := c.service.GetGoogleAuthURL(uid)
	if appErr != nil {
		return ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: appErr.Message})
	}

	return ctx.Redirect(http.StatusFound, authURL)
}

// GoogleCallback receives the authorization code from Google.
// GET /api/auth/callback?code=...&state=...
func (c *AuthController) GoogleCallback(ctx echo.Context) error {
	code := ctx.QueryParam("code")
	state := ctx.QueryParam("state")

	if code == "" {
		return ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing code from Google OAuth"})
	}

	redirectURL, appErr := c.service.HandleGoogleCallback(ctx.Request().Context(), code, state)
	if appErr != nil {
		return ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: appErr.Message})
	}

	return ctx.Redirect(http.StatusFound, redirectURL)
}
