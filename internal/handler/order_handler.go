package handler

import (
	"net/http"
	"strconv"

	"chickenshop/internal/config"
	"chickenshop/internal/middleware"
	"chickenshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	cfg config.Config
	uc  *usecase.OrderUsecase
}

func NewOrderHandler(cfg config.Config, uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{cfg: cfg, uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("", middleware.AuthJWT(h.cfg))

	g.GET("/order_confirmation/:id", h.confirmation)
	g.GET("/track_order", h.trackOrders)
}

func (h *OrderHandler) confirmation(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetMyOrderDetail(c.Request().Context(), userID, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) trackOrders(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListMyOrders(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
