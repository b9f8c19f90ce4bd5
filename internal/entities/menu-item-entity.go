package entities

import "time"

// MenuItem is soft-deleted only; IsDeleted rows stay out of every listing.
type MenuItem struct {
	ID                     uint64
	BranchID               uint64
	Name                   string
	Description            *string
	Price                  float64
	Category               string
	IsAvailable            bool
	PreparationTimeMinutes *int
	Tags                   []string
	IsDeleted              bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
