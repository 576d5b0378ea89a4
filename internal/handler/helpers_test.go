package handler

import (
	"context"
	"net/http"

	"crane-parts-backend/internal/model"
	"crane-parts-backend/internal/service"
	"crane-parts-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.LevelError, Format: "text", Output: "stderr"})
}

// setUser injects an authenticated user the way the auth middleware would.
func setUser(user *model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", user)
		c.Next()
	}
}

// fakeAuthService drives the login handler and the auth middleware in tests.
type fakeAuthService struct {
	loginResp *model.LoginResponse
	loginErr  error
	tokenUser *model.User
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuthService) ValidateToken(tokenString string) (*model.User, error) {
	if f.tokenUser == nil {
		return nil, service.ErrInvalidToken
	}
	return f.tokenUser, nil
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}
