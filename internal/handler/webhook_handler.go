package handler

import (
	"net/http"

	"chickenshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 決済プロセッサからのIPNを受けるHTTP。
// 認証なし・フォームエンコード。業務上の結果に関係なく200を返す
// （200以外を返すとプロセッサが再送を繰り返す）。
type WebhookHandler struct {
	uc *usecase.PaymentUsecase
}

func NewWebhookHandler(uc *usecase.PaymentUsecase) *WebhookHandler {
	return &WebhookHandler{uc: uc}
}

func (h *WebhookHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/notify", h.notify)
}

func (h *WebhookHandler) notify(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		//壊れたボディでもACKは返す
		return c.JSON(http.StatusOK, usecase.PaymentResult{Status: usecase.PaymentStatusRejected})
	}

	fields := make(map[string]string, len(form))
	for k := range form {
		fields[k] = form.Get(k)
	}

	out := h.uc.ProcessNotification(c.Request().Context(), fields)
	return c.JSON(http.StatusOK, out)
}
