package server

import (
	"chickenshop/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

func Start(
	addr string,
	log zerolog.Logger,
	authH *handler.AuthHandler,
	storeH *handler.StorefrontHandler,
	cartH *handler.CartHandler,
	orderH *handler.OrderHandler,
	webhookH *handler.WebhookHandler,
) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())

	//リクエストログはzerologに流す
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:    true,
		LogMethod: true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	}))

	RegisterRoutes(e, authH, storeH, cartH, orderH, webhookH)

	return e.Start(addr)
}
