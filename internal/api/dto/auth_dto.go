package dto

import (
	"time"

	"github.com/spec-kit/repairshop-service/internal/domain"
)

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginResponse payload.
type LoginResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	Staff     StaffResponse    `json:"staff"`
	Role      domain.StaffRole `json:"role"`
}

// ChangePasswordRequest payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// StaffResponse mirrors a staff member, without credentials.
type StaffResponse struct {
	ID     int64            `json:"id"`
	Name   string           `json:"name"`
	Email  string           `json:"email"`
	Role   domain.StaffRole `json:"role"`
	Active bool             `json:"active"`
}

// TechOption is a dropdown entry for technician assignment.
type TechOption struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}
