package purchaserepo

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

const selectPurchase = `
	SELECT pu.id, pu.product_id, pu.quantity, pu.unit_price, pu.supplier, pu.total, pu.notes, pu.purchased_at,
	       p.id AS "product.id", p.code AS "product.code", p.name AS "product.name",
	       p.category AS "product.category", p.size AS "product.size", p.color AS "product.color"
	FROM purchases pu
	JOIN products p ON p.id = pu.product_id`

// PurchaseRepository é o acesso a dados do livro de compras.
type PurchaseRepository struct {
	DB        *sqlx.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewPurchaseRepository cria e retorna uma nova instância do Repositório.
func NewPurchaseRepository(db *sqlx.DB, dbTimeout time.Duration, logger logger.Logger) *PurchaseRepository {
	return &PurchaseRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

// Create grava a compra e devolve o registro com o resumo do produto.
func (r *PurchaseRepository) Create(ctx context.Context, p domain.Purchase) (domain.Purchase, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.PurchasedAt.IsZero() {
		p.PurchasedAt = time.Now().UTC()
	}

	_, err := r.DB.ExecContext(ctxTimeout, `
		INSERT INTO purchases (id, product_id, quantity, unit_price, supplier, total, notes, purchased_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.ProductID, p.Quantity, p.UnitPrice, p.Supplier, p.Total, p.Notes, p.PurchasedAt,
	)
	if err != nil {
		r.logger.Error("Falha ao inserir compra no DB.", err)
		return domain.Purchase{}, apperror.NewDBError("Falha ao inserir compra", err)
	}

	var created domain.Purchase
	if err := r.DB.GetContext(ctxTimeout, &created, selectPurchase+` WHERE pu.id = $1`, p.ID); err != nil {
		r.logger.Error("Falha ao reler compra inserida.", err)
		return domain.Purchase{}, apperror.NewDBError("Falha ao reler compra", err)
	}
	return created, nil
}

// FindByID busca uma compra pelo ID.
func (r *PurchaseRepository) FindByID(ctx context.Context, id string) (domain.Purchase, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var p domain.Purchase
	err := r.DB.GetContext(ctxTimeout, &p, selectPurchase+` WHERE pu.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Purchase{}, apperror.NewNotFoundError(fmt.Sprintf("Compra com ID %s não encontrada.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar compra no DB.", err)
		return domain.Purchase{}, apperror.NewDBError("Falha ao buscar compra", err)
	}
	return p, nil
}

// FindAll lista as compras do período (e do fornecedor, se informado), da mais recente para a mais antiga.
func (r *PurchaseRepository) FindAll(ctx context.Context, filter domain.LedgerFilter) ([]domain.Purchase, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	where, args := repository.LedgerWhere(filter, "pu.purchased_at", "pu.supplier")
	purchases := []domain.Purchase{}
	if err := r.DB.SelectContext(ctxTimeout, &purchases, selectPurchase+where+` ORDER BY pu.purchased_at DESC`, args...); err != nil {
		r.logger.Error("Falha ao listar compras no DB.", err)
		return nil, apperror.NewDBError("Falha ao listar compras", err)
	}
	return purchases, nil
}

// Delete remove a compra e devolve o registro removido (sem o resumo do produto).
func (r *PurchaseRepository) Delete(ctx context.Context, id string) (domain.Purchase, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var p domain.Purchase
	err := r.DB.GetContext(ctxTimeout, &p, `
		DELETE FROM purchases WHERE id = $1
		RETURNING id, product_id, quantity, unit_price, supplier, total, notes, purchased_at`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Purchase{}, apperror.NewNotFoundError(fmt.Sprintf("Compra com ID %s não encontrada.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao remover compra no DB.", err)
		return domain.Purchase{}, apperror.NewDBError("Falha ao remover compra", err)
	}
	return p, nil
}

// Stats agrega as compras a partir de since.
func (r *PurchaseRepository) Stats(ctx context.Context, since time.Time) (domain.PurchaseStats, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var st domain.PurchaseStats
	err := r.DB.GetContext(ctxTimeout, &st, `
		SELECT COUNT(*) AS count,
		       COALESCE(SUM(quantity), 0) AS units,
		       COALESCE(SUM(quantity * unit_price), 0) AS total_spent
		FROM purchases
		WHERE purchased_at >= $1`, since)
	if err != nil {
		r.logger.Error("Falha ao calcular estatísticas de compras.", err)
		return domain.PurchaseStats{}, apperror.NewDBError("Falha ao calcular estatísticas de compras", err)
	}
	return st, nil
}
