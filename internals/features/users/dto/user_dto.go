package dto

import (
	"github.com/google/uuid"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserLite struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	FullName   string    `json:"full_name"`
	EmployeeNo *int64    `json:"employee_no,omitempty"`
	Active     bool      `json:"active"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserLite `json:"user"`
}

type CreateWorkerRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	FullName   string `json:"full_name" validate:"required,min=2,max=120"`
	Phone      string `json:"phone" validate:"omitempty,max=30"`
	EmployeeNo *int64 `json:"employee_no" validate:"omitempty,gt=0"`
}
