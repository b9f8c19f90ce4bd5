package dto

import (
	"github.com/aarondl/null/v8"
)

type RegisterVendorDTO struct {
	BusinessName string `json:"business_name" validate:"required,max=255"`
	LegalName    string `json:"legal_name" validate:"omitempty,max=255"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,max=20"`
	BusinessType string `json:"business_type" validate:"required,max=100"`
}

type UpdateVendorDTO struct {
	BusinessName null.String `json:"business_name" validate:"omitempty,max=255"`
	LegalName    null.String `json:"legal_name" validate:"omitempty,max=255"`
	Phone        null.String `json:"phone" validate:"omitempty,max=20"`
	BusinessType null.String `json:"business_type" validate:"omitempty,max=100"`
}

type VendorDTO struct {
	ID           uint64  `json:"id"`
	UserID       string  `json:"user_id"`
	BusinessName string  `json:"business_name"`
	LegalName    *string `json:"legal_name,omitempty"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	BusinessType string  `json:"business_type"`
	IsActive     bool    `json:"is_active"`
	CreatedAt    string  `json:"created_at"`
}
