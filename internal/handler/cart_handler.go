package handler

import (
	"net/http"

	"chickenshop/internal/config"
	"chickenshop/internal/middleware"
	"chickenshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// カート追加とチェックアウトのHTTP
type CartHandler struct {
	cfg     config.Config
	cartUC  *usecase.CartUsecase
	orderUC *usecase.OrderUsecase
}

// DI
func NewCartHandler(cfg config.Config, cartUC *usecase.CartUsecase, orderUC *usecase.OrderUsecase) *CartHandler {
	return &CartHandler{cfg: cfg, cartUC: cartUC, orderUC: orderUC}
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("", middleware.AuthJWT(h.cfg))

	g.GET("/add_to_cart/:item", h.addToCart)
	g.GET("/checkout", h.checkoutPreview)
	g.POST("/checkout", h.checkout)
}

func (h *CartHandler) addToCart(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	item := c.Param("item")

	out, err := h.cartUC.AddToCart(c.Request().Context(), userID, item)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// GETはカートの中身と合計を見せるだけ（注文は作らない）
func (h *CartHandler) checkoutPreview(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.cartUC.GetCart(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) checkout(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	//二重送信防止キーはヘッダーから受け取る。無ければこちらで採番
	idemKey := c.Request().Header.Get("X-Idempotency-Key")
	if idemKey == "" {
		idemKey = uuid.NewString()
	}

	out, err := h.orderUC.PlaceOrder(c.Request().Context(), userID, usecase.PlaceOrderInput{
		IdempotencyKey: idemKey,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
