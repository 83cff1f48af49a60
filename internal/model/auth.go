package model

import "github.com/golang-jwt/jwt/v5"

// AdminClaims are JWT claims for catalog administration
type AdminClaims struct {
	AdminID string `json:"adminId"`
	jwt.RegisteredClaims
}

// RespondentClaims are JWT claims scoped to one quiz session
type RespondentClaims struct {
	SessionID string `json:"sessionId"`
	Track     Track  `json:"track"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for admin login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token   string `json:"token"`
	AdminID string `json:"adminId"`
}
