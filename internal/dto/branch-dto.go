package dto

import (
	"github.com/aarondl/null/v8"

	"order-catalog/pkg/schedule"
)

type CreateBranchDTO struct {
	BranchName     string                 `json:"branch_name" validate:"required,max=255"`
	BranchCode     string                 `json:"branch_code" validate:"omitempty,max=50"`
	DisplayName    string                 `json:"display_name" validate:"omitempty,max=255"`
	Address        map[string]interface{} `json:"address" validate:"required"`
	Latitude       *float64               `json:"latitude" validate:"omitempty,latitude"`
	Longitude      *float64               `json:"longitude" validate:"omitempty,longitude"`
	City           string                 `json:"city" validate:"required,max=100"`
	BranchPhone    string                 `json:"branch_phone" validate:"omitempty,max=20"`
	BranchEmail    string                 `json:"branch_email" validate:"omitempty,email"`
	ManagerName    string                 `json:"branch_manager_name" validate:"omitempty,max=255"`
	ManagerPhone   string                 `json:"branch_manager_phone" validate:"omitempty,max=20"`
	OperatingHours schedule.Week          `json:"operating_hours" validate:"omitempty"`
}

type UpdateBranchDTO struct {
	BranchName   null.String            `json:"branch_name" validate:"omitempty,max=255"`
	DisplayName  null.String            `json:"display_name" validate:"omitempty,max=255"`
	Address      map[string]interface{} `json:"address"`
	Latitude     null.Float64           `json:"latitude"`
	Longitude    null.Float64           `json:"longitude"`
	City         null.String            `json:"city" validate:"omitempty,max=100"`
	BranchPhone  null.String            `json:"branch_phone" validate:"omitempty,max=20"`
	BranchEmail  null.String            `json:"branch_email" validate:"omitempty,email"`
	ManagerName  null.String            `json:"branch_manager_name" validate:"omitempty,max=255"`
	ManagerPhone null.String            `json:"branch_manager_phone" validate:"omitempty,max=20"`
}

// BranchStatusDTO carries the vendor's manual online/offline toggle. The
// pointer distinguishes "missing" from "false".
type BranchStatusDTO struct {
	IsOpen *bool `json:"is_open" validate:"required"`
}

type OperatingHoursDTO struct {
	Hours schedule.Week `json:"hours" validate:"required"`
}

type BranchDTO struct {
	ID               uint64                 `json:"id"`
	VendorID         uint64                 `json:"vendor_id"`
	BranchName       string                 `json:"branch_name"`
	BranchCode       string                 `json:"branch_code"`
	DisplayName      *string                `json:"display_name,omitempty"`
	Address          map[string]interface{} `json:"address"`
	City             string                 `json:"city"`
	OnboardingStatus string                 `json:"onboarding_status"`
	IsActive         bool                   `json:"is_active"`
	IsOpen           bool                   `json:"is_open"`
	OperatingHours   schedule.Week          `json:"operating_hours"`
	Rating           float64                `json:"rating"`
	TotalOrders      int                    `json:"total_orders"`
	MenuVersion      int                    `json:"menu_version"`
	CreatedAt        string                 `json:"created_at"`
}

type OperatingHoursResponseDTO struct {
	BranchID       uint64        `json:"branch_id"`
	OperatingHours schedule.Week `json:"operating_hours"`
	IsOpen         bool          `json:"is_open"`
}

// AvailabilityDTO is the snapshot answer to "is this branch open right now
// and why". It is computed fresh on every request and never cached.
type AvailabilityDTO struct {
	BranchID               uint64              `json:"branch_id"`
	IsOpen                 bool                `json:"is_open"`
	IsActive               bool                `json:"is_active"`
	IsWithinOperatingHours bool                `json:"is_within_operating_hours"`
	CurrentStatus          schedule.Status     `json:"current_status"`
	TodayHours             []schedule.TimeSlot `json:"today_hours"`
	NextOpenTime           *string             `json:"next_open_time,omitempty"`
	NextCloseTime          *string             `json:"next_close_time,omitempty"`
}

type UploadDocumentDTO struct {
	DocumentType   string `json:"document_type" validate:"required,oneof=FSSAI SHOP_ACT GST ID_PROOF"`
	DocumentNumber string `json:"document_number" validate:"omitempty,max=100"`
	DocumentURL    string `json:"document_url" validate:"required,url"`
	IssueDate      string `json:"issue_date" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate     string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
}

type DocumentDTO struct {
	ID                 uint64  `json:"id"`
	BranchID           uint64  `json:"branch_id"`
	DocumentType       string  `json:"document_type"`
	DocumentNumber     *string `json:"document_number,omitempty"`
	DocumentURL        string  `json:"document_url"`
	VerificationStatus string  `json:"verification_status"`
	CreatedAt          string  `json:"created_at"`
}

type OnboardingStatusDTO struct {
	BranchID          uint64              `json:"branch_id"`
	OnboardingStatus  string              `json:"onboarding_status"`
	IsActive          bool                `json:"is_active"`
	TotalDocuments    int                 `json:"total_documents"`
	ApprovedDocuments int                 `json:"approved_documents"`
	Documents         []DocumentStatusDTO `json:"documents"`
}

type DocumentStatusDTO struct {
	Type   string `json:"type"`
	Status string `json:"status"`
}
