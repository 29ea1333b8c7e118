package inventory

// Input

type CreateInput struct {
	ProductName string  `json:"product_name"`
	Stock       int64   `json:"stock"`
	UnitPrice   float64 `json:"unit_price"`
}

type UpdateInput struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Stock       int64   `json:"stock"`
	UnitPrice   float64 `json:"unit_price"`
}

type DeleteInput struct {
	ProductID int64 `json:"product_id"`
}

type GetInput struct {
	ProductID int64 `json:"product_id"`
}

// Output

type Output struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Stock       int64   `json:"stock"`
	UnitPrice   float64 `json:"unit_price"`
}
