package salerepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gotienda/internal/domain"
	apperror "gotienda/internal/errors"
	"gotienda/internal/pkg/logger"
	"gotienda/internal/repository"
)

// Vendas são sempre lidas com o resumo do produto (colunas "product.*" do sqlx).
const selectSale = `
	SELECT s.id, s.product_id, s.quantity, s.unit_price, s.payment_method, s.commission_percent,
	       s.total, s.net_profit, s.notes, s.sold_at,
	       p.id AS "product.id", p.code AS "product.code", p.name AS "product.name",
	       p.category AS "product.category", p.size AS "product.size", p.color AS "product.color"
	FROM sales s
	JOIN products p ON p.id = s.product_id`

// SaleRepository é o acesso a dados do livro de vendas.
type SaleRepository struct {
	DB        *sqlx.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewSaleRepository cria e retorna uma nova instância do Repositório.
func NewSaleRepository(db *sqlx.DB, dbTimeout time.Duration, logger logger.Logger) *SaleRepository {
	return &SaleRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

// Create grava a venda e devolve o registro com o resumo do produto.
func (r *SaleRepository) Create(ctx context.Context, s domain.Sale) (domain.Sale, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.SoldAt.IsZero() {
		s.SoldAt = time.Now().UTC()
	}

	_, err := r.DB.ExecContext(ctxTimeout, `
		INSERT INTO sales (id, product_id, quantity, unit_price, payment_method, commission_percent,
		                   total, net_profit, notes, sold_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.ProductID, s.Quantity, s.UnitPrice, s.PaymentMethod, s.CommissionPercent,
		s.Total, s.NetProfit, s.Notes, s.SoldAt,
	)
	if err != nil {
		r.logger.Error("Falha ao inserir venda no DB.", err)
		return domain.Sale{}, apperror.NewDBError("Falha ao inserir venda", err)
	}

	var created domain.Sale
	if err := r.DB.GetContext(ctxTimeout, &created, selectSale+` WHERE s.id = $1`, s.ID); err != nil {
		r.logger.Error("Falha ao reler venda inserida.", err)
		return domain.Sale{}, apperror.NewDBError("Falha ao reler venda", err)
	}
	return created, nil
}

// FindByID busca uma venda pelo ID.
func (r *SaleRepository) FindByID(ctx context.Context, id string) (domain.Sale, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var s domain.Sale
	err := r.DB.GetContext(ctxTimeout, &s, selectSale+` WHERE s.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Sale{}, apperror.NewNotFoundError(fmt.Sprintf("Venda com ID %s não encontrada.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar venda no DB.", err)
		return domain.Sale{}, apperror.NewDBError("Falha ao buscar venda", err)
	}
	return s, nil
}

// FindAll lista as vendas do período, da mais recente para a mais antiga.
func (r *SaleRepository) FindAll(ctx context.Context, filter domain.LedgerFilter) ([]domain.Sale, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	where, args := repository.LedgerWhere(filter, "s.sold_at", "")
	sales := []domain.Sale{}
	if err := r.DB.SelectContext(ctxTimeout, &sales, selectSale+where+` ORDER BY s.sold_at DESC`, args...); err != nil {
		r.logger.Error("Falha ao listar vendas no DB.", err)
		return nil, apperror.NewDBError("Falha ao listar vendas", err)
	}
	return sales, nil
}

// Delete remove a venda e devolve o registro removido (sem o resumo do produto).
func (r *SaleRepository) Delete(ctx context.Context, id string) (domain.Sale, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var s domain.Sale
	err := r.DB.GetContext(ctxTimeout, &s, `
		DELETE FROM sales WHERE id = $1
		RETURNING id, product_id, quantity, unit_price, payment_method, commission_percent,
		          total, net_profit, notes, sold_at`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Sale{}, apperror.NewNotFoundError(fmt.Sprintf("Venda com ID %s não encontrada.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao remover venda no DB.", err)
		return domain.Sale{}, apperror.NewDBError("Falha ao remover venda", err)
	}
	return s, nil
}

// Stats agrega as vendas a partir de since. A receita é recalculada como quantidade * preço.
func (r *SaleRepository) Stats(ctx context.Context, since time.Time) (domain.SalesStats, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var st domain.SalesStats
	err := r.DB.GetContext(ctxTimeout, &st, `
		SELECT COUNT(*) AS count,
		       COALESCE(SUM(quantity), 0) AS units,
		       COALESCE(SUM(quantity * unit_price), 0) AS revenue,
		       COALESCE(SUM(net_profit), 0) AS net_profit
		FROM sales
		WHERE sold_at >= $1`, since)
	if err != nil {
		r.logger.Error("Falha ao calcular estatísticas de vendas.", err)
		return domain.SalesStats{}, apperror.NewDBError("Falha ao calcular estatísticas de vendas", err)
	}
	return st, nil
}
