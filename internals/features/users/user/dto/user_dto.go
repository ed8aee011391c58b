package dto

import (
	"strings"

	userModel "naviplan_backend/internals/features/users/user/model"
)

type RegisterRequest struct {
	UserName     string `json:"user_name" validate:"required,min=2,max=60"`
	UserEmail    string `json:"user_email" validate:"required,email,max=120"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

func (r *RegisterRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.UserEmail = strings.ToLower(strings.TrimSpace(r.UserEmail))
}

func (r *LoginRequest) Normalize() {
	r.UserEmail = strings.ToLower(strings.TrimSpace(r.UserEmail))
}

type UserResponse struct {
	UserID    int    `json:"user_id"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}

func NewUserResponse(m userModel.UserModel) UserResponse {
	return UserResponse{
		UserID:    m.UserID,
		UserName:  m.UserName,
		UserEmail: m.UserEmail,
	}
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
