package dashboardservice

import (
	"context"

	"golang.org/x/sync/errgroup"

	"gotienda/internal/domain"
	"gotienda/internal/pkg/logger"
)

// ProductLister lista o catálogo completo.
type ProductLister interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
}

// SalesStatter agrega vendas por período.
type SalesStatter interface {
	Stats(ctx context.Context, period domain.Period) (domain.SalesStats, error)
}

// PurchaseStatter agrega compras por período.
type PurchaseStatter interface {
	Stats(ctx context.Context, period domain.Period) (domain.PurchaseStats, error)
}

// Dashboard é o painel inicial da loja.
type Dashboard struct {
	Period     domain.Period            `json:"period"`
	Inventory  domain.InventorySummary  `json:"inventory"`
	Categories []domain.CategorySummary `json:"categories"`
	Sales      domain.SalesStats        `json:"sales"`
	Purchases  domain.PurchaseStats     `json:"purchases"`
	LowStock   []domain.Product         `json:"low_stock"`
}

// Service monta o dashboard a partir das três fontes de leitura.
type Service struct {
	products  ProductLister
	sales     SalesStatter
	purchases PurchaseStatter
	logger    logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Dashboard.
func NewService(products ProductLister, sales SalesStatter, purchases PurchaseStatter, logger logger.Logger) *Service {
	return &Service{products: products, sales: sales, purchases: purchases, logger: logger}
}

// Load busca inventário, vendas e compras em paralelo. A primeira falha cancela as demais.
func (s *Service) Load(ctx context.Context, period domain.Period) (Dashboard, error) {
	d := Dashboard{Period: period, LowStock: []domain.Product{}}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		products, err := s.products.ListProducts(gctx, domain.ProductFilter{OrderBy: "stock"})
		if err != nil {
			return err
		}
		d.Inventory = domain.SummarizeInventory(products)
		d.Categories = domain.SummarizeByCategory(products)
		for _, p := range products {
			if p.IsLowStock() {
				d.LowStock = append(d.LowStock, p)
			}
		}
		return nil
	})
	g.Go(func() error {
		stats, err := s.sales.Stats(gctx, period)
		d.Sales = stats
		return err
	})
	g.Go(func() error {
		stats, err := s.purchases.Stats(gctx, period)
		d.Purchases = stats
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("Falha ao montar o dashboard.", err)
		return Dashboard{}, err
	}

	s.logger.Debug("Dashboard montado.", map[string]interface{}{
		"period": period, "products": d.Inventory.TotalProducts, "sales": d.Sales.Count,
	})
	return d, nil
}
