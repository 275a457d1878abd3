package domain

import "time"

// Purchase representa uma compra de reposição de estoque.
type Purchase struct {
	ID          string         `json:"id" db:"id"`
	ProductID   string         `json:"product_id" db:"product_id"`
	Product     ProductSummary `json:"product" db:"product"`
	Quantity    int            `json:"quantity" db:"quantity"`
	UnitPrice   float64        `json:"unit_price" db:"unit_price"`
	Supplier    string         `json:"supplier" db:"supplier"`
	Total       float64        `json:"total" db:"total"`
	Notes       string         `json:"notes" db:"notes"`
	PurchasedAt time.Time      `json:"purchased_at" db:"purchased_at"`
}

// PurchaseInput é o payload de criação de compra.
type PurchaseInput struct {
	ProductID string  `json:"product_id" validate:"required,uuid"`
	Quantity  int     `json:"quantity" validate:"gt=0"`
	UnitPrice float64 `json:"unit_price" validate:"gt=0"`
	Supplier  string  `json:"supplier" validate:"max=200"`
	Notes     string  `json:"notes" validate:"max=500"`
}

// PurchaseStats agrega as compras de um período.
type PurchaseStats struct {
	Count      int     `json:"total_purchases" db:"count"`
	Units      int     `json:"units_purchased" db:"units"`
	TotalSpent float64 `json:"total_spent" db:"total_spent"`
}
