package domain

import (
	"sort"
	"time"
)

// DefaultMinStock é o limite de estoque baixo quando o produto não define o seu.
const DefaultMinStock = 5

// Product representa o item principal do catálogo (a Entidade).
// MarginPercent nunca é persistido: é recalculado a partir dos preços em cada leitura.
type Product struct {
	ID            string    `json:"id" db:"id"`
	Code          string    `json:"code" db:"code"` // Gerado pelo banco (P00001, P00002, ...)
	Name          string    `json:"name" db:"name"`
	Category      string    `json:"category" db:"category"`
	Size          string    `json:"size" db:"size"`
	Color         string    `json:"color" db:"color"`
	CostPrice     float64   `json:"cost_price" db:"cost_price"`
	SalePrice     float64   `json:"sale_price" db:"sale_price"`
	Stock         int       `json:"stock" db:"stock"`
	MinStock      int       `json:"min_stock" db:"min_stock"`
	Version       int       `json:"version" db:"version"` // Para Controle de Concorrência Otimista (OCC)
	MarginPercent *float64  `json:"margin_percent,omitempty" db:"-"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// IsLowStock indica se o estoque está no limite mínimo ou abaixo dele.
func (p Product) IsLowStock() bool {
	min := p.MinStock
	if min <= 0 {
		min = DefaultMinStock
	}
	return p.Stock <= min
}

// ProductSummary é a visão reduzida do produto anexada a vendas e compras.
type ProductSummary struct {
	ID       string `json:"id" db:"id"`
	Code     string `json:"code" db:"code"`
	Name     string `json:"name" db:"name"`
	Category string `json:"category" db:"category"`
	Size     string `json:"size" db:"size"`
	Color    string `json:"color" db:"color"`
}

// ProductInput é o payload de criação/edição de produto.
// MinStock é ponteiro para distinguir "não informado" (usa o padrão 5) de zero.
type ProductInput struct {
	Name      string  `json:"name" validate:"required,max=200"`
	Category  string  `json:"category" validate:"required,max=100"`
	Size      string  `json:"size" validate:"required,max=50"`
	Color     string  `json:"color" validate:"required,max=50"`
	CostPrice float64 `json:"cost_price" validate:"gt=0"`
	SalePrice float64 `json:"sale_price" validate:"gt=0"`
	Stock     int     `json:"stock" validate:"gte=0"`
	MinStock  *int    `json:"min_stock,omitempty" validate:"omitempty,gte=0"`
}

// --- Estruturas Auxiliares (Filtros) ---

// ProductFilter define os parâmetros de busca de produtos.
// Search procura em nome, categoria e cor (case-insensitive).
type ProductFilter struct {
	Search   string
	Category string
	Size     string
	OrderBy  string // "created_at" (padrão, desc), "name", "stock"
}

// InventorySummary agrega os indicadores exibidos no dashboard.
type InventorySummary struct {
	TotalProducts  int     `json:"total_products"`
	TotalUnits     int     `json:"total_units"`
	InventoryValue float64 `json:"inventory_value"` // estoque * custo
	SaleValue      float64 `json:"sale_value"`      // estoque * preço de venda
	LowStock       int     `json:"low_stock"`
	OutOfStock     int     `json:"out_of_stock"`
}

// SummarizeInventory calcula o resumo do inventário a partir da lista de produtos.
func SummarizeInventory(products []Product) InventorySummary {
	var s InventorySummary
	s.TotalProducts = len(products)
	for _, p := range products {
		s.TotalUnits += p.Stock
		s.InventoryValue += float64(p.Stock) * p.CostPrice
		s.SaleValue += float64(p.Stock) * p.SalePrice
		if p.IsLowStock() {
			s.LowStock++
		}
		if p.Stock == 0 {
			s.OutOfStock++
		}
	}
	return s
}

// CategorySummary é o resumo de estoque de uma categoria.
type CategorySummary struct {
	Category       string  `json:"category"`
	ProductCount   int     `json:"product_count"`
	TotalStock     int     `json:"total_stock"`
	InventoryValue float64 `json:"inventory_value"`
	SaleValue      float64 `json:"sale_value"`
	LowStock       int     `json:"low_stock"`
}

// SummarizeByCategory agrupa os produtos por categoria, da categoria com mais
// unidades para a com menos. Empates seguem a ordem alfabética.
func SummarizeByCategory(products []Product) []CategorySummary {
	index := map[string]int{}
	out := []CategorySummary{}
	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			i = len(out)
			index[p.Category] = i
			out = append(out, CategorySummary{Category: p.Category})
		}
		c := &out[i]
		c.ProductCount++
		c.TotalStock += p.Stock
		c.InventoryValue += float64(p.Stock) * p.CostPrice
		c.SaleValue += float64(p.Stock) * p.SalePrice
		if p.IsLowStock() {
			c.LowStock++
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].TotalStock != out[b].TotalStock {
			return out[a].TotalStock > out[b].TotalStock
		}
		return out[a].Category < out[b].Category
	})
	return out
}
