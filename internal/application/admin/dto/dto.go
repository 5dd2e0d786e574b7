package dto

import "time"

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=200"`
}

// LoginResponse never carries the token; it travels in the cookie only.
type LoginResponse struct {
	ExpiresAt time.Time `json:"expires_at"`
}

type VerifyResponse struct {
	Valid bool `json:"valid"`
}
