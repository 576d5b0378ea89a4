package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"crane-parts-backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken は無効なトークンエラー
var ErrInvalidToken = errors.New("invalid token")

// TokenTTL is the session lifetime; the login cookie uses the same value.
const TokenTTL = 24 * time.Hour

// AuthenticationService は認証サービスのインターフェース
type AuthenticationService interface {
	Login(ctx context.Context, email, password string) (*model.LoginResponse, error)
	ValidateToken(tokenString string) (*model.User, error)
}

// authenticationServiceImpl は認証サービスの実装
type authenticationServiceImpl struct {
	users  UserService
	secret []byte
}

// NewAuthenticationService は新しい認証サービスを作成
func NewAuthenticationService(users UserService) AuthenticationService {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me" // 開発用デフォルト
	}
	return &authenticationServiceImpl{
		users:  users,
		secret: []byte(secret),
	}
}

// Login は資格情報を検証してJWTトークンを発行
func (s *authenticationServiceImpl) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	user, err := s.users.ValidateCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to validate credentials: %w", err)
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &model.LoginResponse{
		Success: true,
		Token:   token,
		User:    *user,
	}, nil
}

// ValidateToken はJWTトークンを検証してユーザー情報を返す
func (s *authenticationServiceImpl) ValidateToken(tokenString string) (*model.User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.JWTClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &model.User{
		ID:       claims.UserID,
		Name:     claims.Name,
		Email:    claims.Email,
		Role:     claims.Role,
		DealerID: claims.DealerID,
	}, nil
}

// generateJWT はJWTトークンを生成
func (s *authenticationServiceImpl) generateJWT(user *model.User) (string, error) {
	claims := &model.JWTClaims{
		UserID:   user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		DealerID: user.DealerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
