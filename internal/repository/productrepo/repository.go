package productrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gotienda/internal/domain"
	apperror "gotienda/internal/errors"
	"gotienda/internal/pkg/logger"
	"gotienda/internal/pricing"
	"gotienda/internal/repository/pgerr"
)

const productColumns = `id, code, name, category, size, color, cost_price, sale_price,
	stock, min_stock, version, created_at, updated_at`

// ordenações aceitas em FindAll; o padrão é o mais recente primeiro.
var orderBy = map[string]string{
	"":           "created_at DESC",
	"created_at": "created_at DESC",
	"name":       "name ASC",
	"stock":      "stock ASC",
}

// ProductRepository é o acesso a dados de produtos (PostgreSQL).
type ProductRepository struct {
	DB        *sqlx.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewProductRepository cria e retorna uma nova instância do Repositório.
func NewProductRepository(db *sqlx.DB, dbTimeout time.Duration, logger logger.Logger) *ProductRepository {
	return &ProductRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// withMargin recalcula a margem, que nunca é lida do banco.
func withMargin(p domain.Product) domain.Product {
	p.MarginPercent = pricing.MarginPtr(p.CostPrice, p.SalePrice)
	return p
}

// Create insere o produto. O código (P00001...) é gerado pelo banco.
func (r *ProductRepository) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	query := `
		INSERT INTO products (id, name, category, size, color, cost_price, sale_price, stock, min_stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + productColumns

	var created domain.Product
	err := r.DB.GetContext(ctxTimeout, &created, query,
		p.ID, p.Name, p.Category, p.Size, p.Color, p.CostPrice, p.SalePrice, p.Stock, p.MinStock,
	)
	if err != nil {
		r.logger.Error("Falha ao inserir produto no DB.", err)
		return domain.Product{}, apperror.NewDBError("Falha ao inserir produto", err)
	}

	r.logger.Info("Produto inserido.", map[string]interface{}{"product_id": created.ID, "code": created.Code})
	return withMargin(created), nil
}

// FindByID busca um produto pelo ID.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var p domain.Product
	err := r.DB.GetContext(ctxTimeout, &p, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %s não existe na base de dados.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar produto no DB.", err)
		return domain.Product{}, apperror.NewDBError("Falha ao buscar produto", err)
	}
	return withMargin(p), nil
}

// FindAll lista produtos. Search procura em nome, categoria e cor sem diferenciar maiúsculas.
func (r *ProductRepository) FindAll(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	order, ok := orderBy[filter.OrderBy]
	if !ok {
		return nil, apperror.NewValidationError(fmt.Sprintf("Ordenação '%s' não suportada.", filter.OrderBy))
	}

	var (
		where []string
		args  []interface{}
	)
	if s := strings.TrimSpace(filter.Search); s != "" {
		args = append(args, "%"+s+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR category ILIKE $%d OR color ILIKE $%d)", n, n, n))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Size != "" {
		args = append(args, filter.Size)
		where = append(where, fmt.Sprintf("size = $%d", len(args)))
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY " + order

	products := []domain.Product{}
	if err := r.DB.SelectContext(ctxTimeout, &products, query, args...); err != nil {
		r.logger.Error("Falha ao listar produtos no DB.", err)
		return nil, apperror.NewDBError("Falha ao listar produtos", err)
	}
	for i := range products {
		products[i] = withMargin(products[i])
	}
	return products, nil
}

// FindLowStock lista produtos com estoque menor ou igual a threshold, do menor para o maior.
func (r *ProductRepository) FindLowStock(ctx context.Context, threshold int) ([]domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	products := []domain.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE stock <= $1 ORDER BY stock ASC, name ASC`
	if err := r.DB.SelectContext(ctxTimeout, &products, query, threshold); err != nil {
		r.logger.Error("Falha ao listar produtos com estoque baixo.", err)
		return nil, apperror.NewDBError("Falha ao listar estoque baixo", err)
	}
	for i := range products {
		products[i] = withMargin(products[i])
	}
	return products, nil
}

// Update regrava os campos editáveis do produto e incrementa a versão.
func (r *ProductRepository) Update(ctx context.Context, p domain.Product) (domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
		UPDATE products
		SET name = $2, category = $3, size = $4, color = $5, cost_price = $6, sale_price = $7,
		    stock = $8, min_stock = $9, version = version + 1, updated_at = now()
		WHERE id = $1
		RETURNING ` + productColumns

	var updated domain.Product
	err := r.DB.GetContext(ctxTimeout, &updated, query,
		p.ID, p.Name, p.Category, p.Size, p.Color, p.CostPrice, p.SalePrice, p.Stock, p.MinStock,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %s não existe na base de dados.", p.ID))
	}
	if err != nil {
		r.logger.Error("Falha ao atualizar produto no DB.", err)
		return domain.Product{}, apperror.NewDBError("Falha ao atualizar produto", err)
	}
	return withMargin(updated), nil
}

// Delete remove o produto. Produtos com vendas ou compras registradas não podem ser removidos.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM products WHERE id = $1`, id)
	if pgerr.Is(err, pgerr.ForeignKeyViolation) {
		return apperror.NewConflictError("O produto possui vendas ou compras registradas e não pode ser removido.")
	}
	if err != nil {
		r.logger.Error("Falha ao remover produto no DB.", err)
		return apperror.NewDBError("Falha ao remover produto", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %s não existe na base de dados.", id))
	}
	return nil
}

// AdjustStock aplica um ajuste ao estoque, utilizando transação e controle de concorrência otimista (OCC).
// A linha é bloqueada com FOR UPDATE e a regra domain.ApplyStockDelta decide o novo valor.
func (r *ProductRepository) AdjustStock(ctx context.Context, adj domain.StockAdjustment) (domain.Product, error) {
	r.logger.Debug("Iniciando atualização de estoque no repositório.", map[string]interface{}{
		"product_id": adj.ProductID,
		"delta":      adj.Delta,
		"clamp":      adj.Clamp,
	})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTxx(ctxTimeout, nil)
	if err != nil {
		r.logger.Error("Falha ao iniciar transação para atualização de estoque.", err)
		return domain.Product{}, apperror.NewDBError("Falha ao iniciar transação", err)
	}
	defer tx.Rollback() // Rollback em caso de erro; sem efeito após o Commit

	// 1. Obter o estoque atual bloqueando a linha (a 'version' lida aqui é a esperada no UPDATE)
	var current domain.Product
	err = tx.GetContext(ctxTimeout, &current, `SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, adj.ProductID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %s não existe na base de dados.", adj.ProductID))
	}
	if err != nil {
		r.logger.Error("Falha ao selecionar produto para atualização de estoque.", err)
		return domain.Product{}, apperror.NewDBError("Falha ao buscar estoque para atualização", err)
	}

	// 2. Aplicar a regra de estoque
	next, ok := domain.ApplyStockDelta(current.Stock, adj.Delta, adj.Clamp)
	if !ok {
		r.logger.Warn("Ajuste resultaria em estoque negativo.", map[string]interface{}{
			"product_id": adj.ProductID,
			"current":    current.Stock,
			"delta":      adj.Delta,
		})
		return domain.Product{}, apperror.NewInsufficientStockError(adj.ProductID, current.Stock, -adj.Delta)
	}

	// 3. Atualizar com OCC
	var updated domain.Product
	err = tx.GetContext(ctxTimeout, &updated, `
		UPDATE products
		SET stock = $1, version = version + 1, updated_at = now()
		WHERE id = $2 AND version = $3
		RETURNING `+productColumns,
		next, adj.ProductID, current.Version,
	)
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Warn("Falha no controle de concorrência otimista (OCC).", map[string]interface{}{
			"product_id":       adj.ProductID,
			"expected_version": current.Version,
		})
		return domain.Product{}, apperror.NewConflictError("O estoque foi modificado por outra operação. Tente novamente.")
	}
	if err != nil {
		r.logger.Error("Falha ao atualizar estoque.", err)
		return domain.Product{}, apperror.NewDBError("Falha ao atualizar estoque", err)
	}

	// 4. Commitar a transação
	if err := tx.Commit(); err != nil {
		r.logger.Error("Falha ao commitar transação de atualização de estoque.", err)
		return domain.Product{}, apperror.NewDBError("Falha ao commitar transação", err)
	}

	r.logger.Info("Estoque atualizado.", map[string]interface{}{
		"product_id":  adj.ProductID,
		"reason":      adj.Reason,
		"old_stock":   current.Stock,
		"new_stock":   updated.Stock,
		"new_version": updated.Version,
	})
	return withMargin(updated), nil
}

// UpdateCostPrice sobrescreve o preço de custo (última compra vale).
func (r *ProductRepository) UpdateCostPrice(ctx context.Context, id string, costPrice float64) (domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var updated domain.Product
	err := r.DB.GetContext(ctxTimeout, &updated, `
		UPDATE products SET cost_price = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+productColumns, id, costPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %s não existe na base de dados.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao atualizar preço de custo.", err)
		return domain.Product{}, apperror.NewDBError("Falha ao atualizar preço de custo", err)
	}
	return withMargin(updated), nil
}
