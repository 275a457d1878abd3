package productservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gotienda/internal/domain"
	apperror "gotienda/internal/errors"
	"gotienda/internal/pkg/logger"
	"gotienda/internal/pkg/validation"
	"gotienda/internal/pricing"
)

// ProductRepository define o contrato (interface) que este Serviço espera
// da camada de Persistência.
type ProductRepository interface {
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	FindByID(ctx context.Context, id string) (domain.Product, error)
	FindAll(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	FindLowStock(ctx context.Context, threshold int) ([]domain.Product, error)
	Update(ctx context.Context, p domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// Service implementa o catálogo de produtos.
type Service struct {
	repo            ProductRepository
	logger          logger.Logger
	defaultMinStock int
}

// NewService cria e retorna uma nova instância do Serviço de Produto.
func NewService(repo ProductRepository, logger logger.Logger, defaultMinStock int) *Service {
	if defaultMinStock < 0 {
		defaultMinStock = domain.DefaultMinStock
	}
	return &Service{repo: repo, logger: logger, defaultMinStock: defaultMinStock}
}

// roundPrices leva os preços à precisão de centavos do banco antes da validação,
// para que a regra venda > custo valha também para o valor gravado.
func roundPrices(in domain.ProductInput) domain.ProductInput {
	in.CostPrice = pricing.RoundMoney(in.CostPrice)
	in.SalePrice = pricing.RoundMoney(in.SalePrice)
	return in
}

// validateInput aplica as tags do payload e a regra venda > custo.
func validateInput(in domain.ProductInput) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	if in.SalePrice <= in.CostPrice {
		return apperror.NewFieldValidationError("O preço de venda deve ser maior que o preço de custo.",
			map[string]string{"sale_price": "deve ser maior que cost_price"})
	}
	return nil
}

func (s *Service) fromInput(in domain.ProductInput) domain.Product {
	minStock := s.defaultMinStock
	if in.MinStock != nil {
		minStock = *in.MinStock
	}
	return domain.Product{
		Name:      strings.TrimSpace(in.Name),
		Category:  strings.TrimSpace(in.Category),
		Size:      strings.TrimSpace(in.Size),
		Color:     strings.TrimSpace(in.Color),
		CostPrice: in.CostPrice,
		SalePrice: in.SalePrice,
		Stock:     in.Stock,
		MinStock:  minStock,
	}
}

// CreateProduct valida o payload e cadastra o produto. O código é gerado pela base.
func (s *Service) CreateProduct(ctx context.Context, in domain.ProductInput) (domain.Product, error) {
	s.logger.Debug("Iniciando criação de produto.", map[string]interface{}{"name": in.Name})
	in = roundPrices(in)

	// 1. Validação de Regras de Negócio
	if err := validateInput(in); err != nil {
		s.logger.Warn("Produto rejeitado na validação.", map[string]interface{}{"name": in.Name, "error": err.Error()})
		return domain.Product{}, err
	}

	// 2. Delegação para a Camada de Persistência
	p := s.fromInput(in)
	p.ID = uuid.NewString()
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return domain.Product{}, fmt.Errorf("falha ao salvar produto no repositório: %w", err)
	}

	s.logger.Info("Produto criado.", map[string]interface{}{"product_id": created.ID, "code": created.Code})
	return created, nil
}

// GetProductByID busca um produto; o ID precisa ser um UUID.
func (s *Service) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Product{}, apperror.NewValidationError("O ID do produto deve ser um UUID válido.")
	}
	return s.repo.FindByID(ctx, id)
}

// ListProducts busca produtos por texto, categoria e talle.
func (s *Service) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return s.repo.FindAll(ctx, filter)
}

// LowStock lista produtos com estoque até threshold. Threshold negativo usa o mínimo padrão.
func (s *Service) LowStock(ctx context.Context, threshold int) ([]domain.Product, error) {
	if threshold < 0 {
		threshold = s.defaultMinStock
	}
	return s.repo.FindLowStock(ctx, threshold)
}

// UpdateProduct substitui os campos editáveis do produto.
// min_stock omitido mantém o valor já gravado.
func (s *Service) UpdateProduct(ctx context.Context, id string, in domain.ProductInput) (domain.Product, error) {
	s.logger.Debug("Iniciando atualização de produto.", map[string]interface{}{"product_id": id})
	in = roundPrices(in)

	if _, err := uuid.Parse(id); err != nil {
		return domain.Product{}, apperror.NewValidationError("O ID do produto deve ser um UUID válido.")
	}
	if err := validateInput(in); err != nil {
		s.logger.Warn("Atualização de produto rejeitada na validação.", map[string]interface{}{"product_id": id, "error": err.Error()})
		return domain.Product{}, err
	}

	if in.MinStock == nil {
		current, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return domain.Product{}, err
		}
		in.MinStock = &current.MinStock
	}

	p := s.fromInput(in)
	p.ID = id
	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return domain.Product{}, err
	}

	s.logger.Info("Produto atualizado.", map[string]interface{}{"product_id": id, "version": updated.Version})
	return updated, nil
}

// DeleteProduct remove o produto.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewValidationError("O ID do produto deve ser um UUID válido.")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Produto removido.", map[string]interface{}{"product_id": id})
	return nil
}
