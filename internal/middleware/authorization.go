package middleware

import (
	"net/http"

	"crane-parts-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RequirePermission は認可サービス用のミドルウェアを返す
// Errors are rendered in the envelope of the surface being guarded.
func RequirePermission(authzService *service.AuthorizationService, resource, action string, envelope ErrorEnvelope) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := GetUserFromContext(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, envelope.body("authentication required"))
			c.Abort()
			return
		}

		allowed, err := authzService.CheckPermission(user, resource, action)
		if err != nil {
			c.JSON(http.StatusInternalServerError, envelope.body("authorization check failed"))
			c.Abort()
			return
		}

		if !allowed {
			c.JSON(http.StatusForbidden, envelope.body("access denied"))
			c.Abort()
			return
		}

		c.Next()
	}
}
