package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gotienda/internal/domain"
)

func TestProduct_IsLowStock(t *testing.T) {
	assert.True(t, domain.Product{Stock: 5, MinStock: 5}.IsLowStock())
	assert.False(t, domain.Product{Stock: 6, MinStock: 5}.IsLowStock())
	assert.True(t, domain.Product{Stock: 5}.IsLowStock(), "sem mínimo usa o padrão")
	assert.True(t, domain.Product{Stock: 0, MinStock: 2}.IsLowStock())
}

func TestSummarizeInventory(t *testing.T) {
	products := []domain.Product{
		{Stock: 10, MinStock: 5, CostPrice: 10, SalePrice: 15},
		{Stock: 2, MinStock: 5, CostPrice: 20, SalePrice: 30},
		{Stock: 0, MinStock: 1, CostPrice: 5, SalePrice: 8},
	}

	s := domain.SummarizeInventory(products)

	assert.Equal(t, 3, s.TotalProducts)
	assert.Equal(t, 12, s.TotalUnits)
	assert.InDelta(t, 140.0, s.InventoryValue, 1e-9)
	assert.InDelta(t, 210.0, s.SaleValue, 1e-9)
	assert.Equal(t, 2, s.LowStock)
	assert.Equal(t, 1, s.OutOfStock)
}

func TestSummarizeInventory_Empty(t *testing.T) {
	assert.Equal(t, domain.InventorySummary{}, domain.SummarizeInventory(nil))
}

func TestSummarizeByCategory(t *testing.T) {
	tests := []struct {
		name     string
		products []domain.Product
		want     []domain.CategorySummary
	}{
		{
			name:     "sem produtos",
			products: nil,
			want:     []domain.CategorySummary{},
		},
		{
			name: "agrupa e ordena por unidades",
			products: []domain.Product{
				{Category: "Remeras", Stock: 3, MinStock: 5, CostPrice: 10, SalePrice: 15},
				{Category: "Buzos", Stock: 20, MinStock: 5, CostPrice: 30, SalePrice: 50},
				{Category: "Remeras", Stock: 8, MinStock: 5, CostPrice: 12, SalePrice: 18},
			},
			want: []domain.CategorySummary{
				{Category: "Buzos", ProductCount: 1, TotalStock: 20, InventoryValue: 600, SaleValue: 1000},
				{Category: "Remeras", ProductCount: 2, TotalStock: 11, InventoryValue: 126, SaleValue: 189, LowStock: 1},
			},
		},
		{
			name: "empate segue ordem alfabética e mínimo padrão",
			products: []domain.Product{
				{Category: "Medias", Stock: 4, CostPrice: 1, SalePrice: 2},
				{Category: "Gorras", Stock: 4, MinStock: 2, CostPrice: 5, SalePrice: 9},
			},
			want: []domain.CategorySummary{
				{Category: "Gorras", ProductCount: 1, TotalStock: 4, InventoryValue: 20, SaleValue: 36},
				{Category: "Medias", ProductCount: 1, TotalStock: 4, InventoryValue: 4, SaleValue: 8, LowStock: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.SummarizeByCategory(tt.products))
		})
	}
}
