package entities

import "time"

type Order struct {
	ID            uint64
	BranchID      uint64
	OrderNumber   string
	CustomerName  string
	CustomerPhone string
	Status        string
	TotalAmount   float64
	Items         []OrderItem
	CreatedAt     time.Time
}

// OrderItem snapshots the menu item's name and price at purchase time, so
// later menu edits never rewrite order history.
type OrderItem struct {
	ID         uint64
	OrderID    uint64
	MenuItemID uint64
	ItemName   string
	UnitPrice  float64
	Quantity   int
	LineTotal  float64
}

const (
	OrderStatusPlaced = "PLACED"
)
