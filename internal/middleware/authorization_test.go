package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"crane-parts-backend/internal/model"
	"crane-parts-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func gateRouter(t *testing.T, user *model.User, resource, action string) *gin.Engine {
	t.Helper()
	authz, err := service.NewAuthorizationService()
	require.NoError(t, err)

	r := gin.New()
	if user != nil {
		r.Use(func(c *gin.Context) {
			c.Set("user", user)
			c.Next()
		})
	}
	r.GET("/guarded", RequirePermission(authz, resource, action, EnvelopeSuccessFlag), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func Test_RequirePermission(t *testing.T) {
	tests := []struct {
		name     string
		user     *model.User
		resource string
		action   string
		want     int
	}{
		{name: "admin passes the admin gate", user: &model.User{Role: "admin"}, resource: "orders", action: "list_all", want: http.StatusOK},
		{name: "dealer blocked at the admin gate", user: &model.User{Role: "dealer"}, resource: "orders", action: "list_all", want: http.StatusForbidden},
		{name: "dealer passes the dealer gate", user: &model.User{Role: "dealer"}, resource: "orders", action: "list_own", want: http.StatusOK},
		{name: "customer blocked everywhere", user: &model.User{Role: "customer"}, resource: "orders", action: "list_own", want: http.StatusForbidden},
		{name: "no session", user: nil, resource: "orders", action: "list_all", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gateRouter(t, tt.user, tt.resource, tt.action)

			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
