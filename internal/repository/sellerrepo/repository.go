package sellerrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"gotienda/internal/domain"
	apperror "gotienda/internal/errors"
	"gotienda/internal/pkg/logger"
)

const (
	sellerColumns = `id, name, specialty, description, created_at, updated_at`
	linkColumns   = `id, seller_id, name, url, position, created_at`
)

// SellerRepository é o acesso a dados do diretório de sellers e dos seus links.
type SellerRepository struct {
	DB        *sqlx.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewSellerRepository cria e retorna uma nova instância do Repositório.
func NewSellerRepository(db *sqlx.DB, dbTimeout time.Duration, logger logger.Logger) *SellerRepository {
	return &SellerRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

// Create insere o seller e os links na mesma transação.
func (r *SellerRepository) Create(ctx context.Context, s domain.Seller) (domain.Seller, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	tx, err := r.DB.BeginTxx(ctxTimeout, nil)
	if err != nil {
		return domain.Seller{}, apperror.NewDBError("Falha ao iniciar transação", err)
	}
	defer tx.Rollback()

	var created domain.Seller
	err = tx.GetContext(ctxTimeout, &created, `
		INSERT INTO sellers (id, name, specialty, description)
		VALUES ($1, $2, $3, $4)
		RETURNING `+sellerColumns, s.ID, s.Name, s.Specialty, s.Description)
	if err != nil {
		r.logger.Error("Falha ao inserir seller no DB.", err)
		return domain.Seller{}, apperror.NewDBError("Falha ao inserir seller", err)
	}

	if created.Links, err = insertLinks(ctxTimeout, tx, created.ID, s.Links); err != nil {
		r.logger.Error("Falha ao inserir links do seller.", err)
		return domain.Seller{}, apperror.NewDBError("Falha ao inserir links", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Seller{}, apperror.NewDBError("Falha ao commitar transação", err)
	}
	return created, nil
}

// Update regrava os dados do seller e substitui todos os links.
func (r *SellerRepository) Update(ctx context.Context, s domain.Seller) (domain.Seller, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTxx(ctxTimeout, nil)
	if err != nil {
		return domain.Seller{}, apperror.NewDBError("Falha ao iniciar transação", err)
	}
	defer tx.Rollback()

	var updated domain.Seller
	err = tx.GetContext(ctxTimeout, &updated, `
		UPDATE sellers SET name = $2, specialty = $3, description = $4, updated_at = now()
		WHERE id = $1
		RETURNING `+sellerColumns, s.ID, s.Name, s.Specialty, s.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Seller{}, apperror.NewNotFoundError(fmt.Sprintf("Seller com ID %s não encontrado.", s.ID))
	}
	if err != nil {
		r.logger.Error("Falha ao atualizar seller no DB.", err)
		return domain.Seller{}, apperror.NewDBError("Falha ao atualizar seller", err)
	}

	if _, err := tx.ExecContext(ctxTimeout, `DELETE FROM seller_links WHERE seller_id = $1`, s.ID); err != nil {
		r.logger.Error("Falha ao remover links antigos do seller.", err)
		return domain.Seller{}, apperror.NewDBError("Falha ao substituir links", err)
	}
	if updated.Links, err = insertLinks(ctxTimeout, tx, s.ID, s.Links); err != nil {
		r.logger.Error("Falha ao inserir links do seller.", err)
		return domain.Seller{}, apperror.NewDBError("Falha ao substituir links", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Seller{}, apperror.NewDBError("Falha ao commitar transação", err)
	}
	return updated, nil
}

func insertLinks(ctx context.Context, tx *sqlx.Tx, sellerID string, links []domain.SellerLink) ([]domain.SellerLink, error) {
	out := make([]domain.SellerLink, 0, len(links))
	for i, l := range links {
		var created domain.SellerLink
		err := tx.GetContext(ctx, &created, `
			INSERT INTO seller_links (id, seller_id, name, url, position)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+linkColumns, uuid.NewString(), sellerID, l.Name, l.URL, i)
		if err != nil {
			return nil, err
		}
		out = append(out, created)
	}
	return out, nil
}

// FindByID busca um seller com os seus links.
func (r *SellerRepository) FindByID(ctx context.Context, id string) (domain.Seller, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var s domain.Seller
	err := r.DB.GetContext(ctxTimeout, &s, `SELECT `+sellerColumns+` FROM sellers WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Seller{}, apperror.NewNotFoundError(fmt.Sprintf("Seller com ID %s não encontrado.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar seller no DB.", err)
		return domain.Seller{}, apperror.NewDBError("Falha ao buscar seller", err)
	}

	sellers := []domain.Seller{s}
	if err := r.attachLinks(ctxTimeout, sellers); err != nil {
		return domain.Seller{}, err
	}
	return sellers[0], nil
}

// FindAll lista sellers por nome. Search procura em nome, especialidade e descrição.
func (r *SellerRepository) FindAll(ctx context.Context, filter domain.SellerFilter) ([]domain.Seller, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var (
		where []string
		args  []interface{}
	)
	if filter.Specialty != "" {
		args = append(args, filter.Specialty)
		where = append(where, fmt.Sprintf("specialty = $%d", len(args)))
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		args = append(args, "%"+s+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR specialty ILIKE $%d OR description ILIKE $%d)", n, n, n))
	}

	query := `SELECT ` + sellerColumns + ` FROM sellers`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY name ASC"

	sellers := []domain.Seller{}
	if err := r.DB.SelectContext(ctxTimeout, &sellers, query, args...); err != nil {
		r.logger.Error("Falha ao listar sellers no DB.", err)
		return nil, apperror.NewDBError("Falha ao listar sellers", err)
	}
	if err := r.attachLinks(ctxTimeout, sellers); err != nil {
		return nil, err
	}
	return sellers, nil
}

// attachLinks carrega os links de todos os sellers com uma única consulta.
func (r *SellerRepository) attachLinks(ctx context.Context, sellers []domain.Seller) error {
	if len(sellers) == 0 {
		return nil
	}
	ids := make([]string, len(sellers))
	index := make(map[string]int, len(sellers))
	for i, s := range sellers {
		ids[i] = s.ID
		index[s.ID] = i
		sellers[i].Links = []domain.SellerLink{}
	}

	var links []domain.SellerLink
	err := r.DB.SelectContext(ctx, &links, `
		SELECT `+linkColumns+` FROM seller_links
		WHERE seller_id = ANY($1)
		ORDER BY seller_id, position`, pq.Array(ids))
	if err != nil {
		r.logger.Error("Falha ao carregar links dos sellers.", err)
		return apperror.NewDBError("Falha ao carregar links", err)
	}
	for _, l := range links {
		i := index[l.SellerID]
		sellers[i].Links = append(sellers[i].Links, l)
	}
	return nil
}

// Delete remove o seller; os links saem por cascata.
func (r *SellerRepository) Delete(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM sellers WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao remover seller no DB.", err)
		return apperror.NewDBError("Falha ao remover seller", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("Seller com ID %s não encontrado.", id))
	}
	return nil
}

// Specialties devolve as especialidades já usadas no diretório, em ordem alfabética.
func (r *SellerRepository) Specialties(ctx context.Context) ([]string, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	specialties := []string{}
	if err := r.DB.SelectContext(ctxTimeout, &specialties, `SELECT DISTINCT specialty FROM sellers ORDER BY specialty`); err != nil {
		r.logger.Error("Falha ao listar especialidades.", err)
		return nil, apperror.NewDBError("Falha ao listar especialidades", err)
	}
	return specialties, nil
}
