package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID                   uuid.UUID  `json:"id"`
	FullName             string     `json:"fullName"`
	Email                string     `json:"email"`
	WeddingDate          *time.Time `json:"weddingDate"`
	HasGeneratedTimeline bool       `json:"hasGeneratedTimeline"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	FullName    *string `json:"fullName"`
	WeddingDate *string `json:"weddingDate"`
}
