package dto

import (
	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/service"
)

// RegisterRequest represents the request body for account creation.
type RegisterRequest struct {
	Name     string `json:"name" validate:"max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest represents a partial profile patch.
type UpdateProfileRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,max=120"`
	Avatar *string `json:"avatar,omitempty" validate:"omitempty,max=500"`
}

// AuthResponse carries the authenticated user and their access token.
type AuthResponse struct {
	User      *model.User `json:"user"`
	Token     string      `json:"token"`
	ExpiresIn int64       `json:"expires_in"` // seconds
}

// ToAuthResponse converts a service auth result to an AuthResponse.
func ToAuthResponse(result *service.AuthResult) *AuthResponse {
	return &AuthResponse{
		User:      result.User,
		Token:     result.Token,
		ExpiresIn: int64(result.ExpiresIn.Seconds()),
	}
}
