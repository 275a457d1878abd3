package product

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gotienda/internal/api/respond"
	"gotienda/internal/domain"
	apperror "gotienda/internal/errors"
	"gotienda/internal/pkg/logger"
	"gotienda/internal/pkg/middleware"
)

// ProductService define o contrato que o Handler espera da camada de Serviço.
type ProductService interface {
	CreateProduct(ctx context.Context, in domain.ProductInput) (domain.Product, error)
	GetProductByID(ctx context.Context, id string) (domain.Product, error)
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	LowStock(ctx context.Context, threshold int) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, id string, in domain.ProductInput) (domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// Handler agrupa todos os métodos de Handler do produto.
type Handler struct {
	Service ProductService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ProductService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// Routes registra as rotas de /v1/products.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.ListProductsHandler)
	r.Post("/", h.CreateProductHandler)
	r.Get("/low-stock", h.LowStockHandler)
	r.Get("/{id}", h.GetProductByIDHandler)
	r.Put("/{id}", h.UpdateProductHandler)
	r.Delete("/{id}", h.DeleteProductHandler)
}

// CreateProductHandler lida com a requisição POST /v1/products.
// @Summary Cadastra um produto
// @Description O código (P00001...) é gerado pelo banco. sale_price deve ser maior que cost_price.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body domain.ProductInput true "Dados do produto"
// @Success 201 {object} domain.Product
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /products [post]
func (h *Handler) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if claims, ok := middleware.GetUserClaimsFromContext(ctx); ok {
		h.Logger.Debug("Criação de produto solicitada.", map[string]interface{}{"user_id": claims.UserID})
	}

	var in domain.ProductInput
	if err := respond.Decode(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.CreateProduct(ctx, in)
	respond.Handle(w, r, h.Logger, created, err, http.StatusCreated)
}

// ListProductsHandler lida com a requisição GET /v1/products.
// @Summary Lista produtos
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param search query string false "Texto em nome, categoria ou cor"
// @Param category query string false "Categoria exata"
// @Param size query string false "Talle exato"
// @Param order_by query string false "created_at (padrão), name ou stock"
// @Success 200 {array} domain.Product
// @Failure 400 {object} domain.ErrorResponse "Ordenação inválida"
// @Router /products [get]
func (h *Handler) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	products, err := h.Service.ListProducts(r.Context(), domain.ProductFilter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Size:     q.Get("size"),
		OrderBy:  q.Get("order_by"),
	})
	respond.Handle(w, r, h.Logger, products, err, http.StatusOK)
}

// LowStockHandler lida com a requisição GET /v1/products/low-stock.
// @Summary Lista produtos com estoque baixo
// @Description Produtos com estoque menor ou igual a threshold, do menor para o maior.
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param threshold query int false "Limite (padrão DEFAULT_MIN_STOCK)"
// @Success 200 {array} domain.Product
// @Failure 400 {object} domain.ErrorResponse "Limite inválido"
// @Router /products/low-stock [get]
func (h *Handler) LowStockHandler(w http.ResponseWriter, r *http.Request) {
	threshold := -1
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respond.Error(w, r, h.Logger, apperror.NewFieldValidationError("Limite inválido.",
				map[string]string{"threshold": "deve ser um inteiro maior ou igual a 0"}))
			return
		}
		threshold = n
	}

	products, err := h.Service.LowStock(r.Context(), threshold)
	respond.Handle(w, r, h.Logger, products, err, http.StatusOK)
}

// GetProductByIDHandler lida com a requisição GET /v1/products/{id}.
// @Summary Busca um produto
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do produto"
// @Success 200 {object} domain.Product
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Router /products/{id} [get]
func (h *Handler) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	product, err := h.Service.GetProductByID(r.Context(), chi.URLParam(r, "id"))
	respond.Handle(w, r, h.Logger, product, err, http.StatusOK)
}

// UpdateProductHandler lida com a requisição PUT /v1/products/{id}.
// @Summary Atualiza um produto
// @Description Substitui os campos editáveis. Sem min_stock, o mínimo gravado é mantido.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do produto"
// @Param product body domain.ProductInput true "Dados do produto"
// @Success 200 {object} domain.Product
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Failure 409 {object} domain.ErrorResponse "Conflito de versão"
// @Router /products/{id} [put]
func (h *Handler) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.ProductInput
	if err := respond.Decode(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	updated, err := h.Service.UpdateProduct(r.Context(), chi.URLParam(r, "id"), in)
	respond.Handle(w, r, h.Logger, updated, err, http.StatusOK)
}

// DeleteProductHandler lida com a requisição DELETE /v1/products/{id}.
// @Summary Remove um produto
// @Description Produtos com vendas ou compras registradas não podem ser removidos.
// @Tags products
// @Security BearerAuth
// @Param id path string true "ID do produto"
// @Success 204
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Failure 409 {object} domain.ErrorResponse "Produto com histórico"
// @Router /products/{id} [delete]
func (h *Handler) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.DeleteProduct(r.Context(), chi.URLParam(r, "id"))
	respond.Handle(w, r, h.Logger, nil, err, http.StatusNoContent)
}
