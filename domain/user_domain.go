package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetMe          = "user profile retrieved successfully"
	MessageSuccessUpdateUser     = "user updated successfully"
	MessageSuccessUpdatePassword = "password updated successfully"
	MessageSuccessGetUsers       = "users retrieved successfully"
	MessageSuccessVerifyUser     = "user verified successfully"
	MessageSuccessUnverifyUser   = "user verification removed"
	MessageSuccessGetUser        = "user retrieved successfully"
	MessageSuccessDeleteUser     = "user deleted successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetMe          = "failed to retrieve user profile"
	MessageFailedUpdateUser     = "failed to update user"
	MessageFailedUpdatePassword = "failed to update password"
	MessageFailedGetUsers       = "failed to retrieve users"
	MessageFailedVerifyUser     = "failed to verify user"
	MessageFailedGetUser        = "failed to retrieve user"
	MessageFailedDeleteUser     = "failed to delete user"

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserNotFound           = errors.New("user not found")
	ErrWrongCurrentPassword   = errors.New("current password is incorrect")
)

type (
	RegisterRequest struct {
		Name         string `json:"name" validate:"required,min=2"`
		Email        string `json:"email" validate:"required,email"`
		Password     string `json:"password" validate:"required,min=6"`
		Role         string `json:"role" validate:"omitempty,oneof=user donor farmer ngo admin"`
		Organization string `json:"organization" validate:"omitempty"`
		Location     string `json:"location" validate:"omitempty"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	UpdateUserRequest struct {
		Name         string `json:"name" validate:"omitempty,min=2"`
		Email        string `json:"email" validate:"omitempty,email"`
		Organization string `json:"organization" validate:"omitempty"`
		Location     string `json:"location" validate:"omitempty"`
		PhoneNumber  string `json:"phone_number" validate:"omitempty"`
	}

	UpdatePasswordRequest struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=6"`
	}

	UserResponse struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		Email        string    `json:"email"`
		Role         string    `json:"role"`
		Organization string    `json:"organization,omitempty"`
		Location     string    `json:"location,omitempty"`
		PhoneNumber  string    `json:"phone_number,omitempty"`
		AvatarURL    string    `json:"avatar_url,omitempty"`
		IsVerified   bool      `json:"is_verified"`
		CreatedAt    time.Time `json:"created_at"`
	}

	AuthResponse struct {
		User  UserResponse `json:"user"`
		Token string       `json:"token"`
	}
)
