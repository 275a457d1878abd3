package seller

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gotienda/internal/api/respond"
	"gotienda/internal/domain"
	"gotienda/internal/pkg/logger"
)

// SellerService define o contrato que o Handler espera da camada de Serviço.
type SellerService interface {
	CreateSeller(ctx context.Context, in domain.SellerInput) (domain.Seller, error)
	UpdateSeller(ctx context.Context, id string, in domain.SellerInput) (domain.Seller, error)
	GetSeller(ctx context.Context, id string) (domain.Seller, error)
	ListSellers(ctx context.Context, filter domain.SellerFilter) ([]domain.Seller, error)
	DeleteSeller(ctx context.Context, id string) error
	Specialties(ctx context.Context) ([]string, error)
}

// Handler agrupa os handlers do diretório de sellers.
type Handler struct {
	Service SellerService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc SellerService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// Routes registra as rotas de /v1/sellers.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.ListSellersHandler)
	r.Post("/", h.CreateSellerHandler)
	r.Get("/specialties", h.SpecialtiesHandler)
	r.Get("/{id}", h.GetSellerHandler)
	r.Put("/{id}", h.UpdateSellerHandler)
	r.Delete("/{id}", h.DeleteSellerHandler)
}

// CreateSellerHandler lida com a requisição POST /v1/sellers.
// @Summary Cadastra um seller
// @Description Apenas administradores. Links vazios são descartados; ao menos um link completo é exigido.
// @Tags sellers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param seller body domain.SellerInput true "Dados do seller"
// @Success 201 {object} domain.Seller
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 403 {object} domain.ErrorResponse "Usuário não é administrador"
// @Router /sellers [post]
func (h *Handler) CreateSellerHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.SellerInput
	if err := respond.Decode(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.CreateSeller(r.Context(), in)
	respond.Handle(w, r, h.Logger, created, err, http.StatusCreated)
}

// ListSellersHandler lida com a requisição GET /v1/sellers.
// @Summary Lista sellers
// @Tags sellers
// @Produce json
// @Security BearerAuth
// @Param specialty query string false "Especialidade exata"
// @Param search query string false "Texto em nome ou descrição"
// @Success 200 {array} domain.Seller
// @Router /sellers [get]
func (h *Handler) ListSellersHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sellers, err := h.Service.ListSellers(r.Context(), domain.SellerFilter{
		Specialty: q.Get("specialty"),
		Search:    q.Get("search"),
	})
	respond.Handle(w, r, h.Logger, sellers, err, http.StatusOK)
}

// SpecialtiesHandler lida com a requisição GET /v1/sellers/specialties.
// @Summary Lista especialidades
// @Description Catálogo sugerido mais as especialidades já cadastradas.
// @Tags sellers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Router /sellers/specialties [get]
func (h *Handler) SpecialtiesHandler(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.Service.Specialties(r.Context())
	respond.Handle(w, r, h.Logger, specialties, err, http.StatusOK)
}

// GetSellerHandler lida com a requisição GET /v1/sellers/{id}.
// @Summary Busca um seller
// @Tags sellers
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do seller"
// @Success 200 {object} domain.Seller
// @Failure 404 {object} domain.ErrorResponse "Seller não encontrado"
// @Router /sellers/{id} [get]
func (h *Handler) GetSellerHandler(w http.ResponseWriter, r *http.Request) {
	seller, err := h.Service.GetSeller(r.Context(), chi.URLParam(r, "id"))
	respond.Handle(w, r, h.Logger, seller, err, http.StatusOK)
}

// UpdateSellerHandler lida com a requisição PUT /v1/sellers/{id}.
// @Summary Atualiza um seller
// @Description Apenas administradores. A lista de links é substituída por inteiro.
// @Tags sellers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do seller"
// @Param seller body domain.SellerInput true "Dados do seller"
// @Success 200 {object} domain.Seller
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 403 {object} domain.ErrorResponse "Usuário não é administrador"
// @Failure 404 {object} domain.ErrorResponse "Seller não encontrado"
// @Router /sellers/{id} [put]
func (h *Handler) UpdateSellerHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.SellerInput
	if err := respond.Decode(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	updated, err := h.Service.UpdateSeller(r.Context(), chi.URLParam(r, "id"), in)
	respond.Handle(w, r, h.Logger, updated, err, http.StatusOK)
}

// DeleteSellerHandler lida com a requisição DELETE /v1/sellers/{id}.
// @Summary Remove um seller e seus links
// @Tags sellers
// @Security BearerAuth
// @Param id path string true "ID do seller"
// @Success 204
// @Failure 404 {object} domain.ErrorResponse "Seller não encontrado"
// @Router /sellers/{id} [delete]
func (h *Handler) DeleteSellerHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.DeleteSeller(r.Context(), chi.URLParam(r, "id"))
	respond.Handle(w, r, h.Logger, nil, err, http.StatusNoContent)
}
