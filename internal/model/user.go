package model

import "github.com/golang-jwt/jwt/v5"

// User represents an account that can sign in to the backend.
// Dealer accounts carry a DealerID binding; admin and customer accounts do not.
type User struct {
	ID       string  `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name     string  `json:"name" gorm:"type:varchar(100);not null"`
	Email    string  `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone    string  `json:"phone" gorm:"type:varchar(30)"`
	Password string  `json:"password,omitempty" gorm:"type:varchar(255);not null"`
	Role     string  `json:"role" gorm:"type:varchar(50);not null"`
	DealerID *string `json:"dealer_id,omitempty" gorm:"type:varchar(36);index"`
}

// JWTClaims carries the session identity inside the signed token.
type JWTClaims struct {
	UserID   string  `json:"user_id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	DealerID *string `json:"dealer_id,omitempty"`
	jwt.RegisteredClaims
}

// LoginRequest is the login request body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned on successful login. The same token is also
// bound to the `token` cookie by the handler.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}
