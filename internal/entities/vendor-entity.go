package entities

import (
	"time"

	"github.com/google/uuid"
)

type Vendor struct {
	ID           uint64
	UserID       uuid.UUID
	BusinessName string
	LegalName    *string
	Email        string
	Phone        string
	BusinessType string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
