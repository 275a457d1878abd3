package stockservice

import (
	"context"
	"errors"
	"fmt"

	"gotienda/internal/domain"
	apperror "gotienda/internal/errors"
	"gotienda/internal/pkg/logger"
)

// StockRepository define o contrato que o Serviço de Estoque espera da camada de Persistência.
type StockRepository interface {
	AdjustStock(ctx context.Context, adj domain.StockAdjustment) (domain.Product, error)
	UpdateCostPrice(ctx context.Context, id string, costPrice float64) (domain.Product, error)
}

// Service concentra as mutações de estoque e custo disparadas pelos livros de vendas e compras.
type Service struct {
	repo   StockRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Estoque.
func NewService(repo StockRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// AdjustStock aplica uma variação ao estoque de um produto.
// Sem Clamp, um resultado negativo é rejeitado com InsufficientStockError e nada muda.
func (s *Service) AdjustStock(ctx context.Context, adj domain.StockAdjustment) (domain.Product, error) {
	s.logger.Debug("Iniciando ajuste de estoque no serviço.", map[string]interface{}{
		"product_id": adj.ProductID,
		"delta":      adj.Delta,
		"clamp":      adj.Clamp,
		"reason":     adj.Reason,
	})

	if adj.Delta == 0 {
		return domain.Product{}, apperror.NewValidationError("O ajuste de estoque (delta) não pode ser zero.")
	}

	product, err := s.repo.AdjustStock(ctx, adj)
	if err != nil {
		var stockErr *apperror.InsufficientStockError
		if errors.As(err, &stockErr) {
			s.logger.Warn("Ajuste de estoque rejeitado.", map[string]interface{}{
				"product_id": adj.ProductID, "available": stockErr.Available, "requested": stockErr.Requested,
			})
			return domain.Product{}, err
		}
		var conflictErr *apperror.ConflictError
		if errors.As(err, &conflictErr) {
			return domain.Product{}, apperror.NewConflictError(fmt.Sprintf("Falha de concorrência: %s", conflictErr.Msg))
		}
		var notFoundErr *apperror.NotFoundError
		if errors.As(err, &notFoundErr) {
			return domain.Product{}, err
		}
		s.logger.Error("Falha ao ajustar estoque no repositório.", err)
		return domain.Product{}, apperror.NewInternalError("Falha interna ao ajustar estoque.", err)
	}

	s.logger.Info("Estoque ajustado com sucesso.", map[string]interface{}{
		"product_id":  product.ID,
		"new_stock":   product.Stock,
		"new_version": product.Version,
		"reason":      adj.Reason,
	})
	return product, nil
}

// UpdateCostPrice sobrescreve o custo do produto com o da última compra.
func (s *Service) UpdateCostPrice(ctx context.Context, productID string, costPrice float64) (domain.Product, error) {
	if costPrice <= 0 {
		return domain.Product{}, apperror.NewValidationError("O preço de custo deve ser maior que zero.")
	}

	product, err := s.repo.UpdateCostPrice(ctx, productID, costPrice)
	if err != nil {
		return domain.Product{}, err
	}

	s.logger.Info("Preço de custo atualizado pela compra.", map[string]interface{}{
		"product_id": productID, "cost_price": costPrice,
	})
	return product, nil
}
