package handler

import (
	"net/http"
	"time"

	"chickenshop/internal/config"
	"chickenshop/internal/middleware"
	"chickenshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 会員登録・ログイン・ログアウト・プロフィールのHTTP
type AuthHandler struct {
	cfg config.Config
	uc  *usecase.AuthUsecase
}

// DI
func NewAuthHandler(cfg config.Config, uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{cfg: cfg, uc: uc}
}

type RegisterRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Phone    string `json:"phone" form:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/register", h.registerForm)
	e.POST("/register", h.register)
	e.GET("/login", h.loginForm)
	e.POST("/login", h.login)

	g := e.Group("", middleware.AuthJWT(h.cfg))
	g.GET("/logout", h.logout)
	g.GET("/profile", h.profile)
}

// GETはフォームの項目だけ返す（画面はフロント側）
func (h *AuthHandler) registerForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{
		"fields": {"email", "password", "phone"},
	})
}

func (h *AuthHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Register(c.Request().Context(), usecase.AuthRegisterRequest{
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		switch err {
		case usecase.ErrValidation:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation error"})
		case usecase.ErrConflict:
			return c.JSON(http.StatusConflict, ErrorResponse{Error: "email already used"})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *AuthHandler) loginForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{
		"fields": {"email", "password"},
	})
}

func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Login(c.Request().Context(), usecase.AuthLoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch err {
		case usecase.ErrValidation:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation error"})
		case usecase.ErrUnauthorized:
			//「emailが無い」と「パスワード違い」は返し分けない
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid email or password"})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}

	//セッションはJWTをHttpOnly cookieで持つ
	h.setSessionCookie(c, out.Token.AccessToken, out.Token.ExpiresIn)

	return c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) logout(c echo.Context) error {
	h.clearSessionCookie(c)
	return c.JSON(http.StatusOK, MessageResponse{Message: "logged out"})
}

func (h *AuthHandler) profile(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.Me(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string, expiresIn int) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(time.Duration(expiresIn) * time.Second),
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
