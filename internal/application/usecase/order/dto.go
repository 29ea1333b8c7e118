package order

import "time"

// Input

type CreateItemInput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type CreateInput struct {
	CustomerID int64             `json:"customer_id"`
	Items      []CreateItemInput `json:"items"`
}

type GetInput struct {
	OrderID int64 `json:"order_id"`
}

// Output

type CreateOutput struct {
	OrderID     int64   `json:"order_id"`
	TotalAmount float64 `json:"total_amount"`
}

type DetailOutput struct {
	ProductID int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	SubTotal  float64 `json:"sub_total"`
}

type GetOutput struct {
	OrderID     int64          `json:"order_id"`
	CustomerID  int64          `json:"customer_id"`
	CreatedAt   time.Time      `json:"created_at"`
	Details     []DetailOutput `json:"details"`
	TotalAmount float64        `json:"total_amount"`
}
