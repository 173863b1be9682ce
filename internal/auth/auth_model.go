package auth

import "github.com/DhavalSuthar-24/crease/internal/user"

type LoginRequest struct {
	Username string `json:"username" binding:"required,max=64" example:"admin"`
	Password string `json:"password" binding:"required,max=72" example:"password123"`
}

type AuthResponse struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	ExpiresIn   int               `json:"expires_in"` // seconds
	User        user.UserResponse `json:"user"`
}
