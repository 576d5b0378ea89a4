package handler

import (
	"errors"
	"net/http"
	"os"

	"crane-parts-backend/internal/middleware"
	"crane-parts-backend/internal/model"
	"crane-parts-backend/internal/service"
	"crane-parts-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler は認証ハンドラー
type AuthHandler struct {
	authService   service.AuthenticationService
	log           *logger.Logger
	secureCookies bool
}

// NewAuthHandler は新しい認証ハンドラーを作成
func NewAuthHandler(authService service.AuthenticationService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		log:           log.WithComponent("auth_handler"),
		secureCookies: os.Getenv("APP_ENV") == "production",
	}
}

// Login はログイン処理
// Missing fields are a client error, never a server fault. On success the
// issued token is bound to an httpOnly, SameSite=Lax cookie for the token
// lifetime; Secure is set outside development.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "email and password are required"})
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid email or password"})
			return
		}
		h.log.Error("login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookieName, response.Token, int(service.TokenTTL.Seconds()), "/", "", h.secureCookies, true)

	c.JSON(http.StatusOK, response)
}
