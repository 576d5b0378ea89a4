package middleware

import (
	"net/http"
	"strings"

	"crane-parts-backend/internal/model"
	"crane-parts-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TokenCookieName is the session cookie set by the login handler.
const TokenCookieName = "token"

// ErrorEnvelope selects which legacy error shape a route group uses.
// The orders surface carries a success flag, the machines/suggestions
// surface a bare error field; existing clients depend on both.
type ErrorEnvelope int

const (
	// EnvelopeBare renders {"error": ...}
	EnvelopeBare ErrorEnvelope = iota
	// EnvelopeSuccessFlag renders {"success": false, "error": ...}
	EnvelopeSuccessFlag
)

func (e ErrorEnvelope) body(msg string) gin.H {
	if e == EnvelopeSuccessFlag {
		return gin.H{"success": false, "error": msg}
	}
	return gin.H{"error": msg}
}

// AuthMiddleware は認証ミドルウェア
// The session token is read from the login cookie first, then from a
// Bearer header for API clients without a cookie jar. Downstream handlers
// never run for unauthenticated requests.
func AuthMiddleware(authService service.AuthenticationService, envelope ErrorEnvelope) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, envelope.body("authentication required"))
			c.Abort()
			return
		}

		user, err := authService.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, envelope.body("invalid token"))
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// extractToken はクッキーまたはAuthorizationヘッダーからトークンを取得
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(TokenCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return ""
	}
	return tokenParts[1]
}

// GetUserFromContext はコンテキストからユーザー情報を取得
func GetUserFromContext(c *gin.Context) (*model.User, bool) {
	user, exists := c.Get("user")
	if !exists {
		return nil, false
	}

	userModel, ok := user.(*model.User)
	return userModel, ok
}
