package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func tokenFromRequest(req *http.Request) string {
	var got string
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		got = extractToken(c)
		c.Status(http.StatusOK)
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return got
}

func Test_extractToken(t *testing.T) {
	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "cookie-token"})
		assert.Equal(t, "cookie-token", tokenFromRequest(req))
	})

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer header-token")
		assert.Equal(t, "header-token", tokenFromRequest(req))
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "cookie-token"})
		req.Header.Set("Authorization", "Bearer header-token")
		assert.Equal(t, "cookie-token", tokenFromRequest(req))
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token abc")
		assert.Empty(t, tokenFromRequest(req))
	})

	t.Run("nothing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, tokenFromRequest(req))
	})
}

func Test_ErrorEnvelope_body(t *testing.T) {
	assert.Equal(t, gin.H{"error": "nope"}, EnvelopeBare.body("nope"))
	assert.Equal(t, gin.H{"success": false, "error": "nope"}, EnvelopeSuccessFlag.body("nope"))
}
