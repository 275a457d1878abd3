package saleservice

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

// SaleRepository define o contrato do livro de vendas.
type SaleRepository interface {
	Create(ctx context.Context, s domain.Sale) (domain.Sale, error)
	FindByID(ctx context.Context, id string) (domain.Sale, error)
	FindAll(ctx context.Context, filter domain.LedgerFilter) ([]domain.Sale, error)
	Delete(ctx context.Context, id string) (domain.Sale, error)
	Stats(ctx context.Context, since time.Time) (domain.SalesStats, error)
}

// ProductReader é a leitura de produto que a venda precisa (estoque e custo atuais).
type ProductReader interface {
	FindByID(ctx context.Context, id string) (domain.Product, error)
}

// StockAdjuster aplica a variação de estoque decorrente da venda.
type StockAdjuster interface {
	AdjustStock(ctx context.Context, adj domain.StockAdjustment) (domain.Product, error)
}

// Service implementa o livro de vendas e seus efeitos no estoque.
type Service struct {
	repo     SaleRepository
	products ProductReader
	stock    StockAdjuster
	logger   logger.Logger
	now      func() time.Time
}

// NewService cria e retorna uma nova instância do Serviço de Vendas.
func NewService(repo SaleRepository, products ProductReader, stock StockAdjuster, logger logger.Logger) *Service {
	return &Service{repo: repo, products: products, stock: stock, logger: logger, now: time.Now}
}

// CreateSale registra a venda e desconta o estoque.
// Quantidade maior que o estoque é rejeitada antes de qualquer escrita.
// Se o desconto falhar depois do registro, a venda permanece e o erro é um StepError.
func (s *Service) CreateSale(ctx context.Context, in domain.SaleInput) (domain.Sale, error) {
	s.logger.Debug("Iniciando registro de venda.", map[string]interface{}{
		"product_id": in.ProductID, "quantity": in.Quantity,
	})

	// 1. Validação do payload, com o preço já em centavos como será gravado
	in.UnitPrice = pricing.RoundMoney(in.UnitPrice)
	if err := validation.Struct(in); err != nil {
		s.logger.Warn("Venda rejeitada na validação.", map[string]interface{}{"error": err.Error()})
		return domain.Sale{}, err
	}

	// 2. Produto e estoque atuais
	product, err := s.products.FindByID(ctx, in.ProductID)
	if err != nil {
		return domain.Sale{}, err
	}
	if in.Quantity > product.Stock {
		s.logger.Warn("Venda rejeitada por estoque insuficiente.", map[string]interface{}{
			"product_id": product.ID, "stock": product.Stock, "quantity": in.Quantity,
		})
		return domain.Sale{}, apperror.NewInsufficientStockError(product.ID, product.Stock, in.Quantity)
	}

	// 3. Campos derivados com o custo vigente
	total := pricing.SaleTotal(in.Quantity, in.UnitPrice)
	sale := domain.Sale{
		ID:                uuid.NewString(),
		ProductID:         product.ID,
		Quantity:          in.Quantity,
		UnitPrice:         in.UnitPrice,
		PaymentMethod:     in.PaymentMethod,
		CommissionPercent: in.CommissionPercent,
		Total:             total,
		NetProfit:         pricing.NetProfit(total, in.CommissionPercent, in.Quantity, product.CostPrice),
		Notes:             strings.TrimSpace(in.Notes),
		SoldAt:            s.now(),
	}

	// 4. Registro
	created, err := s.repo.Create(ctx, sale)
	if err != nil {
		return domain.Sale{}, err
	}

	// 5. Desconto do estoque
	if _, err := s.stock.AdjustStock(ctx, domain.StockAdjustment{
		ProductID: product.ID,
		Delta:     -in.Quantity,
		Reason:    domain.ReasonSale,
	}); err != nil {
		s.logger.Error("Venda registrada, mas o estoque não foi descontado.", err)
		return created, apperror.NewStepError(apperror.StepStockAdjustment, created.ID, err)
	}

	s.logger.Info("Venda registrada.", map[string]interface{}{
		"sale_id": created.ID, "total": created.Total, "net_profit": created.NetProfit,
	})
	return created, nil
}

// DeleteSale remove a venda e devolve as unidades ao estoque.
func (s *Service) DeleteSale(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewValidationError("O ID da venda deve ser um UUID válido.")
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.stock.AdjustStock(ctx, domain.StockAdjustment{
		ProductID: deleted.ProductID,
		Delta:     deleted.Quantity,
		Reason:    domain.ReasonSaleDeleted,
	}); err != nil {
		s.logger.Error("Venda removida, mas o estoque não foi devolvido.", err)
		return apperror.NewStepError(apperror.StepStockAdjustment, deleted.ID, err)
	}

	s.logger.Info("Venda removida.", map[string]interface{}{"sale_id": id, "restored": deleted.Quantity})
	return nil
}

// ListSales devolve as vendas do período, mais recentes primeiro.
func (s *Service) ListSales(ctx context.Context, filter domain.LedgerFilter) ([]domain.Sale, error) {
	if err := checkRange(filter); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx, filter)
}

// Stats agrega as vendas desde o início do período.
func (s *Service) Stats(ctx context.Context, period domain.Period) (domain.SalesStats, error) {
	return s.repo.Stats(ctx, period.Start(s.now()))
}

// Export escreve as vendas filtradas como planilha XLSX em w.
func (s *Service) Export(ctx context.Context, filter domain.LedgerFilter, w io.Writer) error {
	sales, err := s.ListSales(ctx, filter)
	if err != nil {
		return err
	}
	if err := report.WriteSales(w, sales); err != nil {
		return apperror.NewInternalError("Falha ao gerar planilha de vendas.", err)
	}
	return nil
}

func checkRange(filter domain.LedgerFilter) error {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return apperror.NewValidationError("A data final não pode ser anterior à inicial.")
	}
	return nil
}
