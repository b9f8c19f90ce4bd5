package entities

import (
	"time"

	"order-catalog/pkg/schedule"
)

// Branch is a vendor's physical location: the unit of menu, hours and
// availability. IsActive is the platform approval flag, IsOpen the vendor's
// manual online/offline toggle; both are independent of the schedule.
// MenuVersion starts at 1 and grows by one on every menu mutation. It is a
// cache-key component, not an optimistic lock.
type Branch struct {
	ID               uint64
	VendorID         uint64
	Vendor           *Vendor
	BranchName       string
	BranchCode       string
	DisplayName      *string
	Address          map[string]interface{}
	Latitude         *float64
	Longitude        *float64
	City             string
	BranchPhone      *string
	BranchEmail      *string
	ManagerName      *string
	ManagerPhone     *string
	OnboardingStatus string
	IsActive         bool
	IsOpen           bool
	OperatingHours   schedule.Week
	Rating           float64
	TotalOrders      int
	MenuVersion      int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Onboarding statuses a branch moves through before activation.
const (
	OnboardingPending            = "PENDING"
	OnboardingDocumentsSubmitted = "DOCUMENTS_SUBMITTED"
	OnboardingApproved           = "APPROVED"
)

type BranchDocument struct {
	ID                 uint64
	BranchID           uint64
	DocumentType       string
	DocumentNumber     *string
	DocumentURL        string
	IssueDate          *time.Time
	ExpiryDate         *time.Time
	VerificationStatus string
	CreatedAt          time.Time
}

// RequiredDocumentTypes must all be on file before onboarding moves to
// DOCUMENTS_SUBMITTED.
var RequiredDocumentTypes = []string{"FSSAI", "SHOP_ACT", "GST", "ID_PROOF"}
