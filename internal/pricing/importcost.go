package pricing

import (
	"fmt"
	"math"

	apperror "gotienda/internal/errors"
)

// ImportRates são as tarifas do serviço de importação. Valores em USD.
type ImportRates struct {
	FirstKgRate        float64
	ExtraKgRate        float64
	RechargePercent    float64
	ServiceCharge      float64
	OptimalWeightGrams float64
}

// DefaultImportRates devolve as tarifas vigentes do serviço.
func DefaultImportRates() ImportRates {
	return ImportRates{
		FirstKgRate:        24.46,
		ExtraKgRate:        9.08,
		RechargePercent:    4,
		ServiceCharge:      4,
		OptimalWeightGrams: 5999,
	}
}

// InternalShippingOptions são os valores de frete interno (USD) oferecidos por item.
// Zero também é aceito para itens que chegam sem frete interno.
var InternalShippingOptions = []float64{0.5, 1, 1.5}

// ImportItem é um item de um envio consolidado.
type ImportItem struct {
	Price            float64 `json:"price"`
	InternalShipping float64 `json:"internal_shipping"`
	WeightGrams      float64 `json:"weight_grams"`
}

// ItemCost é o custo de um item depois do rateio dos encargos do envio.
type ItemCost struct {
	Price               float64 `json:"price"`
	InternalShipping    float64 `json:"internal_shipping"`
	WeightGrams         float64 `json:"weight_grams"`
	Share               float64 `json:"share"`
	AllocatedShipping   float64 `json:"allocated_shipping"`
	AllocatedCommission float64 `json:"allocated_commission"`
	LandedCost          float64 `json:"landed_cost"`
}

// WeightAdvice compara o peso total com o peso ótimo do envio. Não altera os custos.
type WeightAdvice struct {
	Status         string  `json:"status"` // "ok" ou "over"
	RemainingGrams float64 `json:"remaining_grams"`
	ExcessGrams    float64 `json:"excess_grams"`
}

// ImportQuote é o resultado do cálculo de um envio.
type ImportQuote struct {
	Items                 []ItemCost   `json:"items"`
	TotalProductCost      float64      `json:"total_product_cost"`
	TotalWeightGrams      float64      `json:"total_weight_grams"`
	RechargeCommission    float64      `json:"recharge_commission"`
	InternationalShipping float64      `json:"international_shipping"`
	ServiceCharge         float64      `json:"service_charge"`
	TotalCost             float64      `json:"total_cost"`
	CostPerItem           float64      `json:"cost_per_item"`
	Weight                WeightAdvice `json:"weight"`
}

// InternationalShipping devolve o frete internacional para o peso total:
// o primeiro kg sempre é cobrado e cada kg adicional, mesmo parcial, soma a tarifa extra.
func (r ImportRates) InternationalShipping(totalGrams float64) float64 {
	shipping := r.FirstKgRate
	kg := totalGrams / 1000
	if kg > 1 {
		shipping += math.Ceil(kg-1) * r.ExtraKgRate
	}
	return shipping
}

// Advise classifica o peso total em relação ao peso ótimo.
func (r ImportRates) Advise(totalGrams float64) WeightAdvice {
	if totalGrams <= r.OptimalWeightGrams {
		return WeightAdvice{Status: "ok", RemainingGrams: r.OptimalWeightGrams - totalGrams}
	}
	return WeightAdvice{Status: "over", ExcessGrams: totalGrams - r.OptimalWeightGrams}
}

// Quote calcula o custo total do envio e o rateia entre os itens na proporção de
// (preço + frete interno). Se todos os itens custam zero o rateio é em partes iguais.
// A soma dos LandedCost é igual a TotalCost.
func (r ImportRates) Quote(items []ImportItem) (ImportQuote, error) {
	if err := validateItems(items); err != nil {
		return ImportQuote{}, err
	}

	// 1. Totais do envio
	var productCost, weight float64
	for _, it := range items {
		productCost += it.Price + it.InternalShipping
		weight += it.WeightGrams
	}

	// 2. Encargos
	recharge := productCost * r.RechargePercent / 100
	international := r.InternationalShipping(weight)
	total := productCost + recharge + international + r.ServiceCharge

	q := ImportQuote{
		Items:                 make([]ItemCost, len(items)),
		TotalProductCost:      productCost,
		TotalWeightGrams:      weight,
		RechargeCommission:    recharge,
		InternationalShipping: international,
		ServiceCharge:         r.ServiceCharge,
		TotalCost:             total,
		CostPerItem:           total / float64(len(items)),
		Weight:                r.Advise(weight),
	}

	if !finite(productCost, weight, recharge, international, total, q.CostPerItem) {
		return ImportQuote{}, errOverflow()
	}

	// 3. Rateio por item
	shared := international + r.ServiceCharge
	for i, it := range items {
		share := 1 / float64(len(items))
		if productCost > 0 {
			share = (it.Price + it.InternalShipping) / productCost
		}
		allocShipping := shared * share
		allocCommission := recharge * share
		q.Items[i] = ItemCost{
			Price:               it.Price,
			InternalShipping:    it.InternalShipping,
			WeightGrams:         it.WeightGrams,
			Share:               share,
			AllocatedShipping:   allocShipping,
			AllocatedCommission: allocCommission,
			LandedCost:          it.Price + it.InternalShipping + allocShipping + allocCommission,
		}
		if !finite(share, allocShipping, allocCommission, q.Items[i].LandedCost) {
			return ImportQuote{}, errOverflow()
		}
	}

	return q, nil
}

func validateItems(items []ImportItem) error {
	if len(items) == 0 {
		return apperror.NewValidationError("Informe ao menos um item para calcular o envio.")
	}
	fields := map[string]string{}
	for i, it := range items {
		if it.Price < 0 || math.IsNaN(it.Price) || math.IsInf(it.Price, 0) {
			fields[fmt.Sprintf("items[%d].price", i)] = "deve ser maior ou igual a zero"
		}
		if it.WeightGrams < 0 || math.IsNaN(it.WeightGrams) || math.IsInf(it.WeightGrams, 0) {
			fields[fmt.Sprintf("items[%d].weight_grams", i)] = "deve ser maior ou igual a zero"
		}
		if it.InternalShipping != 0 && !isShippingOption(it.InternalShipping) {
			fields[fmt.Sprintf("items[%d].internal_shipping", i)] = "deve ser 0, 0.5, 1 ou 1.5"
		}
	}
	if len(fields) > 0 {
		return apperror.NewFieldValidationError("Itens de importação inválidos.", fields)
	}
	return nil
}

func errOverflow() error {
	return apperror.NewFieldValidationError("Itens de importação inválidos.",
		map[string]string{"items": "valores grandes demais para o cálculo"})
}

func isShippingOption(v float64) bool {
	for _, opt := range InternalShippingOptions {
		if v == opt {
			return true
		}
	}
	return false
}
