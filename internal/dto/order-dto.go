package dto

type PlaceOrderDTO struct {
	CustomerName  string              `json:"customer_name" validate:"required,max=255"`
	CustomerPhone string              `json:"customer_phone" validate:"required,max=20"`
	Items         []PlaceOrderItemDTO `json:"items" validate:"required,min=1,dive"`
}

type PlaceOrderItemDTO struct {
	MenuItemID uint64 `json:"menu_item_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gt=0,lte=50"`
}

type OrderDTO struct {
	ID            uint64         `json:"id"`
	BranchID      uint64         `json:"branch_id"`
	OrderNumber   string         `json:"order_number"`
	CustomerName  string         `json:"customer_name"`
	CustomerPhone string         `json:"customer_phone"`
	Status        string         `json:"status"`
	TotalAmount   float64        `json:"total_amount"`
	Items         []OrderItemDTO `json:"items"`
	CreatedAt     string         `json:"created_at"`
}

type OrderItemDTO struct {
	MenuItemID uint64  `json:"menu_item_id"`
	ItemName   string  `json:"item_name"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
	LineTotal  float64 `json:"line_total"`
}
