package pricing

// MarginPercent devolve (venda - custo) / custo * 100.
// Com custo zero a margem é indefinida e ok é false.
func MarginPercent(cost, sale float64) (margin float64, ok bool) {
	if cost == 0 {
		return 0, false
	}
	return (sale - cost) / cost * 100, true
}

// MarginPtr é a forma usada na leitura de produtos: nil quando a margem é indefinida.
func MarginPtr(cost, sale float64) *float64 {
	m, ok := MarginPercent(cost, sale)
	if !ok {
		return nil
	}
	return &m
}

// SaleTotal é o total bruto de uma venda.
func SaleTotal(quantity int, unitPrice float64) float64 {
	return float64(quantity) * unitPrice
}

// NetProfit é o lucro líquido de uma venda: total menos a comissão da forma de pagamento
// menos o custo das unidades vendidas.
func NetProfit(total, commissionPercent float64, quantity int, costPrice float64) float64 {
	return total - total*commissionPercent/100 - float64(quantity)*costPrice
}

// PurchaseTotal é o total de uma compra.
func PurchaseTotal(quantity int, unitPrice float64) float64 {
	return float64(quantity) * unitPrice
}
