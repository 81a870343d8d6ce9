package server

import (
	"chickenshop/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	authH *handler.AuthHandler,
	storeH *handler.StorefrontHandler,
	cartH *handler.CartHandler,
	orderH *handler.OrderHandler,
	webhookH *handler.WebhookHandler,
) {
	authH.RegisterRoutes(e)
	storeH.RegisterRoutes(e)
	cartH.RegisterRoutes(e)
	orderH.RegisterRoutes(e)
	webhookH.RegisterRoutes(e)
}
