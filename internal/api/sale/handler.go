package sale

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"gotienda/internal/api/respond"
	"gotienda/internal/domain"
	"gotienda/internal/pkg/logger"
	"gotienda/internal/pkg/report"
)

// SaleService define o contrato que o Handler espera da camada de Serviço.
type SaleService interface {
	CreateSale(ctx context.Context, in domain.SaleInput) (domain.Sale, error)
	DeleteSale(ctx context.Context, id string) error
	ListSales(ctx context.Context, filter domain.LedgerFilter) ([]domain.Sale, error)
	Stats(ctx context.Context, period domain.Period) (domain.SalesStats, error)
	Export(ctx context.Context, filter domain.LedgerFilter, w io.Writer) error
}

// Handler agrupa os handlers do livro de vendas.
type Handler struct {
	Service SaleService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc SaleService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// Routes registra as rotas de /v1/sales.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.ListSalesHandler)
	r.Post("/", h.CreateSaleHandler)
	r.Get("/stats", h.StatsHandler)
	r.Get("/export", h.ExportHandler)
	r.Delete("/{id}", h.DeleteSaleHandler)
}

// CreateSaleHandler lida com a requisição POST /v1/sales.
// @Summary Registra uma venda
// @Description Desconta o estoque do produto. Total e lucro líquido são calculados no servidor.
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sale body domain.SaleInput true "Dados da venda"
// @Success 201 {object} domain.Sale
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Failure 409 {object} domain.ErrorResponse "Estoque insuficiente ou etapa de estoque falhou"
// @Router /sales [post]
func (h *Handler) CreateSaleHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.SaleInput
	if err := respond.Decode(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.CreateSale(r.Context(), in)
	respond.Handle(w, r, h.Logger, created, err, http.StatusCreated)
}

// ListSalesHandler lida com a requisição GET /v1/sales.
// @Summary Lista vendas
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param from query string false "Data inicial AAAA-MM-DD"
// @Param to query string false "Data final AAAA-MM-DD (inclusive)"
// @Success 200 {array} domain.Sale
// @Failure 400 {object} domain.ErrorResponse "Datas inválidas"
// @Router /sales [get]
func (h *Handler) ListSalesHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := respond.LedgerFilter(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	sales, err := h.Service.ListSales(r.Context(), filter)
	respond.Handle(w, r, h.Logger, sales, err, http.StatusOK)
}

// StatsHandler lida com a requisição GET /v1/sales/stats.
// @Summary Estatísticas de vendas
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param period query string false "day, week ou month (padrão)"
// @Success 200 {object} domain.SalesStats
// @Failure 400 {object} domain.ErrorResponse "Período inválido"
// @Router /sales/stats [get]
func (h *Handler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	period, err := respond.Period(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	stats, err := h.Service.Stats(r.Context(), period)
	respond.Handle(w, r, h.Logger, stats, err, http.StatusOK)
}

// ExportHandler lida com a requisição GET /v1/sales/export.
// @Summary Exporta vendas em XLSX
// @Tags sales
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param from query string false "Data inicial AAAA-MM-DD"
// @Param to query string false "Data final AAAA-MM-DD (inclusive)"
// @Success 200 {file} file
// @Router /sales/export [get]
func (h *Handler) ExportHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := respond.LedgerFilter(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	// A planilha é montada antes do primeiro byte para que um erro ainda vire JSON.
	var buf bytes.Buffer
	if err := h.Service.Export(r.Context(), filter, &buf); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	respond.XLSX(w, report.FileName("ventas", time.Now()))
	if _, err := buf.WriteTo(w); err != nil {
		h.Logger.Error("Falha ao enviar planilha de vendas.", err)
	}
}

// DeleteSaleHandler lida com a requisição DELETE /v1/sales/{id}.
// @Summary Remove uma venda
// @Description Devolve as unidades ao estoque do produto.
// @Tags sales
// @Security BearerAuth
// @Param id path string true "ID da venda"
// @Success 204
// @Failure 404 {object} domain.ErrorResponse "Venda não encontrada"
// @Router /sales/{id} [delete]
func (h *Handler) DeleteSaleHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.DeleteSale(r.Context(), chi.URLParam(r, "id"))
	respond.Handle(w, r, h.Logger, nil, err, http.StatusNoContent)
}
