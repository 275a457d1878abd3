package domain

import "time"

// PaymentMethod identifica a forma de pagamento de uma venda.
type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "efectivo"
	PaymentDebitCard   PaymentMethod = "tarjeta_debito"
	PaymentCreditCard  PaymentMethod = "tarjeta_credito"
	PaymentTransfer    PaymentMethod = "transferencia"
	PaymentMercadoPago PaymentMethod = "mercadopago"
	PaymentOther       PaymentMethod = "otro"
)

// Sale representa uma venda registrada no livro de vendas.
// Total é sempre Quantity * UnitPrice; NetProfit é o instantâneo calculado na criação
// com o custo vigente do produto naquele momento.
type Sale struct {
	ID                string         `json:"id" db:"id"`
	ProductID         string         `json:"product_id" db:"product_id"`
	Product           ProductSummary `json:"product" db:"product"`
	Quantity          int            `json:"quantity" db:"quantity"`
	UnitPrice         float64        `json:"unit_price" db:"unit_price"`
	PaymentMethod     PaymentMethod  `json:"payment_method" db:"payment_method"`
	CommissionPercent float64        `json:"commission_percent" db:"commission_percent"`
	Total             float64        `json:"total" db:"total"`
	NetProfit         float64        `json:"net_profit" db:"net_profit"`
	Notes             string         `json:"notes" db:"notes"`
	SoldAt            time.Time      `json:"sold_at" db:"sold_at"`
}

// SaleInput é o payload de criação de venda. Totais não são aceitos do cliente.
type SaleInput struct {
	ProductID         string        `json:"product_id" validate:"required,uuid"`
	Quantity          int           `json:"quantity" validate:"gt=0"`
	UnitPrice         float64       `json:"unit_price" validate:"gt=0"`
	PaymentMethod     PaymentMethod `json:"payment_method" validate:"required,oneof=efectivo tarjeta_debito tarjeta_credito transferencia mercadopago otro"`
	CommissionPercent float64       `json:"commission_percent" validate:"gte=0,lte=100"`
	Notes             string        `json:"notes" validate:"max=500"`
}

// LedgerFilter filtra vendas e compras por período (inclusive) e fornecedor.
// Supplier só se aplica a compras.
type LedgerFilter struct {
	From     *time.Time
	To       *time.Time
	Supplier string
}

// SalesStats agrega as vendas de um período.
type SalesStats struct {
	Count     int     `json:"total_sales" db:"count"`
	Units     int     `json:"units_sold" db:"units"`
	Revenue   float64 `json:"revenue" db:"revenue"`
	NetProfit float64 `json:"net_profit" db:"net_profit"`
}
