package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateMenuItemDTO struct {
	Name                   string   `json:"name" validate:"required,max=255"`
	Description            string   `json:"description" validate:"omitempty,max=1000"`
	Price                  float64  `json:"price" validate:"required,gt=0"`
	Category               string   `json:"category" validate:"required,max=100"`
	PreparationTimeMinutes *int     `json:"preparation_time_minutes" validate:"omitempty,gte=0,lte=240"`
	Tags                   []string `json:"tags" validate:"omitempty,dive,max=50"`
}

type UpdateMenuItemDTO struct {
	Name                   null.String  `json:"name" validate:"omitempty,max=255"`
	Description            null.String  `json:"description" validate:"omitempty,max=1000"`
	Price                  null.Float64 `json:"price" validate:"omitempty,gt=0"`
	Category               null.String  `json:"category" validate:"omitempty,max=100"`
	IsAvailable            null.Bool    `json:"is_available"`
	PreparationTimeMinutes null.Int     `json:"preparation_time_minutes" validate:"omitempty,gte=0,lte=240"`
	Tags                   []string     `json:"tags" validate:"omitempty,dive,max=50"`
}

type MenuItemDTO struct {
	ID                     uint64   `json:"id"`
	BranchID               uint64   `json:"branch_id"`
	Name                   string   `json:"name"`
	Description            *string  `json:"description,omitempty"`
	Price                  float64  `json:"price"`
	Category               string   `json:"category"`
	IsAvailable            bool     `json:"is_available"`
	PreparationTimeMinutes *int     `json:"preparation_time_minutes,omitempty"`
	Tags                   []string `json:"tags,omitempty"`
	CreatedAt              string   `json:"created_at"`
}
