package handler

import (
	"net/http"

	"chickenshop/internal/config"
	"chickenshop/internal/domain/menu"
	"chickenshop/internal/inventory"
	"chickenshop/internal/middleware"

	"github.com/labstack/echo/v4"
)

// トップページ・メニュー・決済結果の静的ページ
type StorefrontHandler struct {
	cfg    config.Config
	ledger *inventory.Ledger
}

func NewStorefrontHandler(cfg config.Config, ledger *inventory.Ledger) *StorefrontHandler {
	return &StorefrontHandler{cfg: cfg, ledger: ledger}
}

type MenuItem struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Stock int64  `json:"stock"`
}

func (h *StorefrontHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.index)
	e.GET("/success", h.success)
	e.GET("/cancel", h.cancel)

	g := e.Group("", middleware.AuthJWT(h.cfg))
	g.GET("/menu", h.menu)
}

func (h *StorefrontHandler) index(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "Welcome to the chicken shop"})
}

// メニューは固定。在庫は台帳の現在値を添える
func (h *StorefrontHandler) menu(c echo.Context) error {
	items := make([]MenuItem, 0, len(menu.Items))
	for _, name := range menu.Items {
		items = append(items, MenuItem{
			Name:  name,
			Price: menu.UnitPrice,
			Stock: h.ledger.Stock(name),
		})
	}
	return c.JSON(http.StatusOK, map[string][]MenuItem{"items": items})
}

func (h *StorefrontHandler) success(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "Payment successful. Thank you!"})
}

func (h *StorefrontHandler) cancel(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "Payment canceled."})
}
