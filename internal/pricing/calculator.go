// Package pricing concentra os cálculos puros de preço: formação do preço final,
// rateio de custos de importação e campos derivados de vendas e compras.
package pricing

import (
	"math"

	apperror "gotienda/internal/errors"
)

// PriceInput são os parâmetros da formação de preço. Percentuais em pontos (10 = 10%).
type PriceInput struct {
	BaseCost                  float64 `json:"base_cost" validate:"gte=0"`
	ImportTaxPercent          float64 `json:"import_tax_percent"`
	ShippingPercent           float64 `json:"shipping_percent"`
	ProfitMarginPercent       float64 `json:"profit_margin_percent"`
	PlatformCommissionPercent float64 `json:"platform_commission_percent"`
}

// Breakdown decompõe o preço final nas suas parcelas.
type Breakdown struct {
	Cost       float64 `json:"cost"`
	Tax        float64 `json:"tax"`
	Shipping   float64 `json:"shipping"`
	Profit     float64 `json:"profit"`
	Commission float64 `json:"commission"`
}

// Sum devolve a soma das parcelas, na mesma ordem em que o preço é montado.
func (b Breakdown) Sum() float64 {
	return b.Cost + b.Tax + b.Shipping + b.Profit + b.Commission
}

// PriceQuote é o resultado da formação de preço.
type PriceQuote struct {
	FinalPrice            float64   `json:"final_price"`
	Subtotal              float64   `json:"subtotal"`
	PriceBeforeCommission float64   `json:"price_before_commission"`
	Breakdown             Breakdown `json:"breakdown"`
}

// Calculate monta o preço final:
// custo + imposto + frete = subtotal; subtotal + lucro = preço antes da comissão;
// preço antes da comissão + comissão da plataforma = preço final.
// Os valores são somados da esquerda para a direita, então FinalPrice == Breakdown.Sum().
func Calculate(in PriceInput) PriceQuote {
	tax := in.BaseCost * in.ImportTaxPercent / 100
	shipping := in.BaseCost * in.ShippingPercent / 100
	subtotal := in.BaseCost + tax + shipping

	profit := subtotal * in.ProfitMarginPercent / 100
	beforeCommission := subtotal + profit

	commission := beforeCommission * in.PlatformCommissionPercent / 100
	final := beforeCommission + commission

	return PriceQuote{
		FinalPrice:            final,
		Subtotal:              subtotal,
		PriceBeforeCommission: beforeCommission,
		Breakdown: Breakdown{
			Cost:       in.BaseCost,
			Tax:        tax,
			Shipping:   shipping,
			Profit:     profit,
			Commission: commission,
		},
	}
}

// Validate recusa cotações com parcelas infinitas ou NaN, que surgem quando as
// entradas são grandes demais para float64.
func (q PriceQuote) Validate() error {
	b := q.Breakdown
	if !finite(q.FinalPrice, q.Subtotal, q.PriceBeforeCommission, b.Cost, b.Tax, b.Shipping, b.Profit, b.Commission) {
		return apperror.NewFieldValidationError("Valores fora do intervalo calculável.",
			map[string]string{"base_cost": "valor grande demais para o cálculo"})
	}
	return nil
}

// ShareOf devolve quanto amount representa do preço final, em porcentagem.
// Preço final zero devolve 0.
func (q PriceQuote) ShareOf(amount float64) float64 {
	if q.FinalPrice == 0 {
		return 0
	}
	return amount / q.FinalPrice * 100
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
