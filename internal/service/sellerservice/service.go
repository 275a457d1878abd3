package sellerservice

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"gotienda/internal/domain"
	apperror "gotienda/internal/errors"
	"gotienda/internal/pkg/logger"
	"gotienda/internal/pkg/validation"
)

// SellerRepository define o contrato do diretório de sellers.
type SellerRepository interface {
	Create(ctx context.Context, s domain.Seller) (domain.Seller, error)
	Update(ctx context.Context, s domain.Seller) (domain.Seller, error)
	FindByID(ctx context.Context, id string) (domain.Seller, error)
	FindAll(ctx context.Context, filter domain.SellerFilter) ([]domain.Seller, error)
	Delete(ctx context.Context, id string) error
	Specialties(ctx context.Context) ([]string, error)
}

// Service implementa o diretório de sellers.
// Criação e edição exigem permissão de administrador.
type Service struct {
	repo   SellerRepository
	auth   domain.Authorizer
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Sellers.
func NewService(repo SellerRepository, auth domain.Authorizer, logger logger.Logger) *Service {
	return &Service{repo: repo, auth: auth, logger: logger}
}

// normalize apara os campos e descarta links totalmente vazios.
func normalize(in domain.SellerInput) domain.SellerInput {
	out := domain.SellerInput{
		Name:        strings.TrimSpace(in.Name),
		Specialty:   strings.TrimSpace(in.Specialty),
		Description: strings.TrimSpace(in.Description),
	}
	for _, l := range in.Links {
		l.Name = strings.TrimSpace(l.Name)
		l.URL = strings.TrimSpace(l.URL)
		if l.Name == "" && l.URL == "" {
			continue
		}
		out.Links = append(out.Links, l)
	}
	return out
}

// prepare verifica a permissão, valida o payload e monta o Seller.
func (s *Service) prepare(ctx context.Context, in domain.SellerInput) (domain.Seller, error) {
	// 1. Permissão
	if !s.auth.IsAdmin(ctx) {
		s.logger.Warn("Edição de seller negada: usuário não é administrador.", nil)
		return domain.Seller{}, apperror.NewForbiddenError("Apenas administradores podem cadastrar ou editar sellers.")
	}

	// 2. Validação
	in = normalize(in)
	if err := validation.Struct(in); err != nil {
		s.logger.Warn("Seller rejeitado na validação.", map[string]interface{}{"name": in.Name, "error": err.Error()})
		return domain.Seller{}, err
	}
	if len(in.Links) == 0 {
		return domain.Seller{}, apperror.NewFieldValidationError("Informe pelo menos um link.",
			map[string]string{"links": "pelo menos um link com nome e URL"})
	}

	seller := domain.Seller{Name: in.Name, Specialty: in.Specialty, Description: in.Description}
	for i, l := range in.Links {
		seller.Links = append(seller.Links, domain.SellerLink{Name: l.Name, URL: l.URL, Position: i})
	}
	return seller, nil
}

// CreateSeller cadastra um seller com seus links.
func (s *Service) CreateSeller(ctx context.Context, in domain.SellerInput) (domain.Seller, error) {
	s.logger.Debug("Iniciando criação de seller.", map[string]interface{}{"name": in.Name})

	seller, err := s.prepare(ctx, in)
	if err != nil {
		return domain.Seller{}, err
	}
	seller.ID = uuid.NewString()

	created, err := s.repo.Create(ctx, seller)
	if err != nil {
		return domain.Seller{}, err
	}

	s.logger.Info("Seller criado.", map[string]interface{}{"seller_id": created.ID, "links": len(created.Links)})
	return created, nil
}

// UpdateSeller substitui os dados e a lista de links do seller.
func (s *Service) UpdateSeller(ctx context.Context, id string, in domain.SellerInput) (domain.Seller, error) {
	s.logger.Debug("Iniciando atualização de seller.", map[string]interface{}{"seller_id": id})

	if _, err := uuid.Parse(id); err != nil {
		return domain.Seller{}, apperror.NewValidationError("O ID do seller deve ser um UUID válido.")
	}
	seller, err := s.prepare(ctx, in)
	if err != nil {
		return domain.Seller{}, err
	}
	seller.ID = id

	updated, err := s.repo.Update(ctx, seller)
	if err != nil {
		return domain.Seller{}, err
	}

	s.logger.Info("Seller atualizado.", map[string]interface{}{"seller_id": id, "links": len(updated.Links)})
	return updated, nil
}

// GetSeller busca um seller com seus links.
func (s *Service) GetSeller(ctx context.Context, id string) (domain.Seller, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Seller{}, apperror.NewValidationError("O ID do seller deve ser um UUID válido.")
	}
	return s.repo.FindByID(ctx, id)
}

// ListSellers filtra o diretório por especialidade e texto.
func (s *Service) ListSellers(ctx context.Context, filter domain.SellerFilter) ([]domain.Seller, error) {
	filter.Specialty = strings.TrimSpace(filter.Specialty)
	filter.Search = strings.TrimSpace(filter.Search)
	return s.repo.FindAll(ctx, filter)
}

// DeleteSeller remove o seller e, em cascata, seus links.
func (s *Service) DeleteSeller(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewValidationError("O ID do seller deve ser um UUID válido.")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Seller removido.", map[string]interface{}{"seller_id": id})
	return nil
}

// Specialties junta o catálogo sugerido com as especialidades já cadastradas, sem repetir.
func (s *Service) Specialties(ctx context.Context) ([]string, error) {
	used, err := s.repo.Specialties(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(domain.Specialties)+len(used))
	out := make([]string, 0, len(domain.Specialties)+len(used))
	for _, sp := range append(append([]string{}, domain.Specialties...), used...) {
		key := strings.ToLower(sp)
		if sp == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, sp)
	}
	sort.Strings(out)
	return out, nil
}
