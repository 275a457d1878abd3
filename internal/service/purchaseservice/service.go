package purchaseservice

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"gotienda/internal/domain"
	apperror "gotienda/internal/errors"
	"gotienda/internal/pkg/logger"
	"gotienda/internal/pkg/report"
	"gotienda/internal/pkg/validation"
	"gotienda/internal/pricing"
)

// PurchaseRepository define o contrato do livro de compras.
type PurchaseRepository interface {
	Create(ctx context.Context, p domain.Purchase) (domain.Purchase, error)
	FindByID(ctx context.Context, id string) (domain.Purchase, error)
	FindAll(ctx context.Context, filter domain.LedgerFilter) ([]domain.Purchase, error)
	Delete(ctx context.Context, id string) (domain.Purchase, error)
	Stats(ctx context.Context, since time.Time) (domain.PurchaseStats, error)
}

// ProductReader é a leitura de produto que a compra precisa.
type ProductReader interface {
	FindByID(ctx context.Context, id string) (domain.Product, error)
}

// StockService aplica os efeitos da compra no produto.
type StockService interface {
	AdjustStock(ctx context.Context, adj domain.StockAdjustment) (domain.Product, error)
	UpdateCostPrice(ctx context.Context, productID string, costPrice float64) (domain.Product, error)
}

// Service implementa o livro de compras.
type Service struct {
	repo     PurchaseRepository
	products ProductReader
	stock    StockService
	logger   logger.Logger
	now      func() time.Time
}

// NewService cria e retorna uma nova instância do Serviço de Compras.
func NewService(repo PurchaseRepository, products ProductReader, stock StockService, logger logger.Logger) *Service {
	return &Service{repo: repo, products: products, stock: stock, logger: logger, now: time.Now}
}

// CreatePurchase registra a compra, soma o estoque e, se o preço unitário mudou,
// sobrescreve o custo do produto (vale a última compra).
func (s *Service) CreatePurchase(ctx context.Context, in domain.PurchaseInput) (domain.Purchase, error) {
	s.logger.Debug("Iniciando registro de compra.", map[string]interface{}{
		"product_id": in.ProductID, "quantity": in.Quantity, "unit_price": in.UnitPrice,
	})

	// 1. Validação do payload, com o preço já em centavos como será gravado
	in.UnitPrice = pricing.RoundMoney(in.UnitPrice)
	if err := validation.Struct(in); err != nil {
		s.logger.Warn("Compra rejeitada na validação.", map[string]interface{}{"error": err.Error()})
		return domain.Purchase{}, err
	}

	// 2. Produto atual
	product, err := s.products.FindByID(ctx, in.ProductID)
	if err != nil {
		return domain.Purchase{}, err
	}

	// 3. Registro
	created, err := s.repo.Create(ctx, domain.Purchase{
		ID:          uuid.NewString(),
		ProductID:   product.ID,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		Supplier:    strings.TrimSpace(in.Supplier),
		Total:       pricing.PurchaseTotal(in.Quantity, in.UnitPrice),
		Notes:       strings.TrimSpace(in.Notes),
		PurchasedAt: s.now(),
	})
	if err != nil {
		return domain.Purchase{}, err
	}

	// 4. Entrada no estoque
	if _, err := s.stock.AdjustStock(ctx, domain.StockAdjustment{
		ProductID: product.ID,
		Delta:     in.Quantity,
		Reason:    domain.ReasonPurchase,
	}); err != nil {
		s.logger.Error("Compra registrada, mas o estoque não foi somado.", err)
		return created, apperror.NewStepError(apperror.StepStockAdjustment, created.ID, err)
	}

	// 5. Novo custo
	if in.UnitPrice != product.CostPrice {
		if _, err := s.stock.UpdateCostPrice(ctx, product.ID, in.UnitPrice); err != nil {
			s.logger.Error("Compra registrada, mas o custo do produto não foi atualizado.", err)
			return created, apperror.NewStepError(apperror.StepCostPriceUpdate, created.ID, err)
		}
	}

	s.logger.Info("Compra registrada.", map[string]interface{}{
		"purchase_id": created.ID, "total": created.Total, "supplier": created.Supplier,
	})
	return created, nil
}

// DeletePurchase remove a compra e retira as unidades do estoque, sem deixá-lo negativo.
// O custo do produto não volta ao valor anterior.
func (s *Service) DeletePurchase(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewValidationError("O ID da compra deve ser um UUID válido.")
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.stock.AdjustStock(ctx, domain.StockAdjustment{
		ProductID: deleted.ProductID,
		Delta:     -deleted.Quantity,
		Clamp:     true,
		Reason:    domain.ReasonPurchaseDeleted,
	}); err != nil {
		s.logger.Error("Compra removida, mas o estoque não foi ajustado.", err)
		return apperror.NewStepError(apperror.StepStockAdjustment, deleted.ID, err)
	}

	s.logger.Info("Compra removida.", map[string]interface{}{"purchase_id": id, "removed": deleted.Quantity})
	return nil
}

// ListPurchases devolve as compras do período e fornecedor, mais recentes primeiro.
func (s *Service) ListPurchases(ctx context.Context, filter domain.LedgerFilter) ([]domain.Purchase, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, apperror.NewValidationError("A data final não pode ser anterior à inicial.")
	}
	filter.Supplier = strings.TrimSpace(filter.Supplier)
	return s.repo.FindAll(ctx, filter)
}

// Stats agrega as compras desde o início do período.
func (s *Service) Stats(ctx context.Context, period domain.Period) (domain.PurchaseStats, error) {
	return s.repo.Stats(ctx, period.Start(s.now()))
}

// Export escreve as compras filtradas como planilha XLSX em w.
func (s *Service) Export(ctx context.Context, filter domain.LedgerFilter, w io.Writer) error {
	purchases, err := s.ListPurchases(ctx, filter)
	if err != nil {
		return err
	}
	if err := report.WritePurchases(w, purchases); err != nil {
		return apperror.NewInternalError("Falha ao gerar planilha de compras.", err)
	}
	return nil
}
