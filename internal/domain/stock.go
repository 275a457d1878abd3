package domain

// StockAdjustment descreve uma variação de estoque de um produto.
// Clamp limita o resultado a zero em vez de rejeitar (usado ao excluir compras).
type StockAdjustment struct {
	ProductID string `json:"product_id"`
	Delta     int    `json:"delta"`
	Clamp     bool   `json:"clamp"`
	Reason    string `json:"reason"` // "sale", "sale_deleted", "purchase", "purchase_deleted"
}

// Motivos de ajuste de estoque registrados nos logs.
const (
	ReasonSale            = "sale"
	ReasonSaleDeleted     = "sale_deleted"
	ReasonPurchase        = "purchase"
	ReasonPurchaseDeleted = "purchase_deleted"
)

// ApplyStockDelta aplica delta ao estoque atual.
// Sem clamp, um resultado negativo é rejeitado (ok=false) e o estoque não muda.
// Com clamp, o resultado é max(0, current+delta).
func ApplyStockDelta(current, delta int, clamp bool) (next int, ok bool) {
	next = current + delta
	if next >= 0 {
		return next, true
	}
	if clamp {
		return 0, true
	}
	return current, false
}
